package villageevent

import (
	"context"
	"fmt"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
)

// chainConditions are the predicate gates a ChainReaction may name.
var chainConditions = map[string]func(domain.Village) bool{
	"low_happiness": func(v domain.Village) bool { return v.Happiness < 40 },
	"low_stability": func(v domain.Village) bool { return v.Stability < 40 },
	"low_food": func(v domain.Village) bool {
		stock := v.Resources.Stocks[domain.ResourceFood]
		consumption := v.Resources.DailyConsumption[domain.ResourceFood]
		return consumption > 0 && stock.Current/consumption < 7
	},
}

// ProcessEvent resolves an active event: applies its immediate effects,
// spawns chain reactions, and records history. An event that is not active or
// already resolved degrades gracefully into a fixed morale penalty instead of
// an error, so a tick never aborts mid-flight.
func (s *service) ProcessEvent(ctx context.Context, ev *domain.GameEvent, village domain.Village) ProcessResult {
	log := logger.FromContext(ctx)

	if ev == nil || !ev.IsActive || ev.IsResolved {
		log.Warn("event not processable, applying degradation penalty",
			"village_id", village.ID)
		return s.degrade(ev, village, "The day passes uneasily, and nothing is resolved.")
	}

	out := s.effects.ApplyEffects(village, ev.Effects)

	chained, scheduled := s.CreateEventChains(ctx, ev, out)
	for _, c := range chained {
		ev.ChildEventIDs = append(ev.ChildEventIDs, c.ID)
	}

	ev.IsActive = false
	ev.IsResolved = true
	ev.ResolvedAt = s.now()

	active := make(map[string]*domain.GameEvent, len(out.ActiveEvents))
	for id, e := range out.ActiveEvents {
		if id != ev.ID {
			active[id] = e
		}
	}
	out.ActiveEvents = active
	out.ScheduledEvents = append(out.ScheduledEvents, scheduled...)

	outcome := domain.EventOutcome{
		EventID:   ev.ID,
		Result:    ResultResolved,
		Effects:   ev.Effects,
		Narrative: ev.Description,
	}
	for _, c := range chained {
		outcome.ChainedIDs = append(outcome.ChainedIDs, c.ID)
	}

	history := domain.HistoricalEvent{
		EventID:         ev.ID,
		Type:            ev.Type,
		Category:        ev.Category,
		Severity:        ev.Severity,
		Title:           ev.Title,
		Outcome:         ResultResolved,
		ShortTermImpact: shortTermImpact(ev.Effects),
		LongTermImpact:  longTermImpact(ev.Severity, len(chained)+len(scheduled)),
		ResolvedAt:      ev.ResolvedAt,
	}

	log.Info("event processed",
		"village_id", village.ID,
		"event_id", ev.ID,
		"type", ev.Type,
		"chained", len(chained),
		"scheduled", len(scheduled))

	return ProcessResult{
		Village:       out,
		Outcome:       outcome,
		History:       history,
		ChainedEvents: chained,
		Scheduled:     scheduled,
	}
}

// degrade converts a processing failure into the fixed morale penalty and a
// generic narrative line.
func (s *service) degrade(ev *domain.GameEvent, village domain.Village, narrativeLine string) ProcessResult {
	penalty := domain.EventEffects{
		Happiness: FailureHappinessPenalty,
		Stability: FailureStabilityPenalty,
	}
	out := s.effects.ApplyEffects(village, penalty)

	outcome := domain.EventOutcome{
		Result:    ResultFailure,
		Effects:   penalty,
		Narrative: narrativeLine,
	}
	if ev != nil {
		outcome.EventID = ev.ID
	}
	return ProcessResult{Village: out, Outcome: outcome}
}

// CreateEventChains rolls each chain reaction on the trigger independently.
// Reactions that clear both the probability draw and their condition gate
// spawn immediately, or are scheduled after their delay.
func (s *service) CreateEventChains(ctx context.Context, trigger *domain.GameEvent, village domain.Village) ([]domain.GameEvent, []domain.ScheduledEvent) {
	var chained []domain.GameEvent
	var scheduled []domain.ScheduledEvent

	for _, reaction := range trigger.ChainReactions {
		if s.rnd() >= reaction.Probability {
			continue
		}
		if reaction.Condition != "" {
			predicate, ok := chainConditions[reaction.Condition]
			if !ok || !predicate(village) {
				continue
			}
		}

		tmpl, ok := eventTemplates[reaction.EventType]
		if !ok {
			logger.FromContext(ctx).Warn("chain reaction names unknown event type",
				"trigger", trigger.Type, "event_type", reaction.EventType)
			continue
		}

		if reaction.DelayDays > 0 {
			scheduled = append(scheduled, domain.ScheduledEvent{
				ID:        s.newID(),
				EventType: tmpl.Type,
				Category:  tmpl.Category,
				DueAt:     s.now().AddDate(0, 0, reaction.DelayDays),
				ParentID:  trigger.ID,
			})
			continue
		}

		child := s.materialize(ctx, tmpl, village)
		child.ParentEventID = trigger.ID
		chained = append(chained, child)
	}

	return chained, scheduled
}

func shortTermImpact(effects domain.EventEffects) string {
	switch {
	case effects.Population < 0:
		return fmt.Sprintf("lost %d villagers", -effects.Population)
	case effects.Happiness <= -10 || effects.Stability <= -10:
		return "morale shaken"
	case effects.Happiness >= 10:
		return "spirits lifted"
	case len(effects.Resources) > 0:
		return "stocks shifted"
	default:
		return "little immediate change"
	}
}

func longTermImpact(severity domain.EventSeverity, followUps int) string {
	if followUps > 0 {
		return fmt.Sprintf("set %d further events in motion", followUps)
	}
	switch severity {
	case domain.SeverityCatastrophic, domain.SeverityMajor:
		return "the village will remember this for years"
	case domain.SeverityBeneficial:
		return "a season worth celebrating"
	default:
		return "soon forgotten"
	}
}
