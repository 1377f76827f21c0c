package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/event"
	"github.com/aldermoor/villageforge/internal/logger"
)

// resolvedEvent pairs an outcome with the event it closed, so notifications
// can carry the event's category and severity.
type resolvedEvent struct {
	outcome domain.EventOutcome
	ev      domain.GameEvent
}

// Tick advances one village by deltaHours of simulated time under the
// village's writer lock. The sequence is fixed: seasonal effects, stock
// update, production, due scheduled events, random generation, crisis
// detection, persistence, notifications.
func (s *service) Tick(ctx context.Context, villageID string, deltaHours float64) (TickResult, error) {
	if villageID == "" {
		return TickResult{}, fmt.Errorf("%w: village id is required", domain.ErrInvalidInput)
	}
	if deltaHours <= 0 {
		deltaHours = DefaultTickHours
	}

	var result TickResult
	var resolved []resolvedEvent
	err := s.locks.WithLock(concurrency.VillageKey(villageID), func() error {
		stored, err := s.store.GetVillage(ctx, villageID)
		if err != nil {
			return err
		}
		village := *stored
		now := s.now()

		// Season rollover schedules the coming season's events before
		// anything else sees the new season.
		if season := seasonFor(now); season != village.Season {
			village.Season = season
			sched := s.events.ScheduleSeasonalEvents(ctx, village, season)
			village.ScheduledEvents = append(village.ScheduledEvents, sched...)
		}

		// Seasonal and weather modifiers shape this tick's flows only; the
		// persisted flow maps stay at their base rates so modifiers never
		// compound across ticks.
		base := village.Resources
		work := s.resources.ManageSeasonalEffects(base, village.Season, village.Weather)
		work = s.resources.UpdateResources(work, deltaHours)
		work.DailyProduction = base.DailyProduction
		work.DailyConsumption = base.DailyConsumption
		work.NetFlow = base.NetFlow
		village.Resources = work
		village, result.Updates = s.resources.ProcessProduction(village)

		// Materialize due scheduled events, then this tick's random draw.
		var pending []domain.GameEvent
		due, remaining := splitDue(village.ScheduledEvents, now)
		village.ScheduledEvents = remaining
		for _, sched := range due {
			ev, ok := s.events.MaterializeScheduled(ctx, sched, village)
			if !ok {
				logger.FromContext(ctx).Warn(LogMsgScheduledDropped,
					"village_id", villageID,
					"event_type", sched.EventType)
				continue
			}
			pending = append(pending, ev)
		}

		pending = append(pending, s.events.GenerateRandomEvents(ctx, village)...)
		result.Generated = append([]domain.GameEvent{}, pending...)

		village, resolved = s.settle(ctx, village, pending)
		for _, r := range resolved {
			result.Outcomes = append(result.Outcomes, r.outcome)
		}

		result.Crises = s.resources.DetectResourceCrises(village)
		result.CrisisLevel = s.events.CalculateCrisisLevel(village.ActiveEvents)
		village.LastTick = now

		if err := s.store.SaveVillage(ctx, &village); err != nil {
			return err
		}
		if err := s.store.SaveScheduledEvents(ctx, villageID, village.ScheduledEvents); err != nil {
			return err
		}

		result.Village = village
		return nil
	})
	if err != nil {
		return TickResult{}, err
	}

	s.notify(ctx, villageID, deltaHours, result, resolved)

	logger.FromContext(ctx).Info(LogMsgTickCompleted,
		"village_id", villageID,
		"delta_hours", deltaHours,
		"events_generated", len(result.Generated),
		"events_resolved", len(result.Outcomes),
		"crisis_level", result.CrisisLevel)
	return result, nil
}

// splitDue partitions scheduled events into those due at or before now and
// the rest, preserving order.
func splitDue(scheduled []domain.ScheduledEvent, now time.Time) (due, remaining []domain.ScheduledEvent) {
	for _, sched := range scheduled {
		if !sched.DueAt.After(now) {
			due = append(due, sched)
		} else {
			remaining = append(remaining, sched)
		}
	}
	return due, remaining
}

// settle routes each pending event: events offering player choices go into
// the active set and wait; everything else is processed immediately, and any
// chain reactions join the queue. Bounded so a catalog cycle cannot spin.
func (s *service) settle(ctx context.Context, village domain.Village, pending []domain.GameEvent) (domain.Village, []resolvedEvent) {
	var resolved []resolvedEvent

	queue := append([]domain.GameEvent{}, pending...)
	for processed := 0; len(queue) > 0 && processed < maxChainEvents; processed++ {
		ev := queue[0]
		queue = queue[1:]

		if len(ev.PlayerChoices) > 0 {
			village = withActiveEvent(village, ev)
			continue
		}

		res := s.events.ProcessEvent(ctx, &ev, village)
		village = res.Village
		resolved = append(resolved, resolvedEvent{outcome: res.Outcome, ev: ev})
		queue = append(queue, res.ChainedEvents...)
		village.ScheduledEvents = append(village.ScheduledEvents, res.Scheduled...)

		if err := s.store.AppendHistory(ctx, village.ID, res.History); err != nil {
			logger.FromContext(ctx).Error("failed to append event history",
				"village_id", village.ID,
				"event_id", ev.ID,
				"error", err)
		}
	}

	return village, resolved
}

// withActiveEvent returns the village with ev added to a copied active set.
func withActiveEvent(village domain.Village, ev domain.GameEvent) domain.Village {
	active := make(map[string]*domain.GameEvent, len(village.ActiveEvents)+1)
	for id, e := range village.ActiveEvents {
		active[id] = e
	}
	copied := ev
	active[ev.ID] = &copied
	village.ActiveEvents = active
	return village
}

// notify publishes the tick's bus events outside the village lock.
func (s *service) notify(ctx context.Context, villageID string, deltaHours float64, result TickResult, resolved []resolvedEvent) {
	if s.bus == nil {
		return
	}
	for _, ev := range result.Generated {
		s.publish(ctx, event.NewEventGeneratedEvent(villageID, ev))
	}
	for _, r := range resolved {
		s.publish(ctx, event.NewEventResolvedEvent(villageID, r.outcome, r.ev))
	}
	for _, crisis := range result.Crises {
		s.publish(ctx, event.NewCrisisDetectedEvent(villageID, crisis))
	}
	s.publish(ctx, event.NewTickCompletedEvent(villageID, deltaHours, len(result.Generated), result.CrisisLevel))
}
