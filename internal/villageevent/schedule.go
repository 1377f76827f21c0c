package villageevent

import (
	"context"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
)

// seasonLeadDays spreads seasonal events through the coming season rather
// than stacking them on its first day.
const seasonLeadDays = 30

// ScheduleSeasonalEvents creates one ScheduledEvent per event type
// appropriate to the season, each with a seasonal recurrence. Types already
// scheduled for this season are not duplicated.
func (s *service) ScheduleSeasonalEvents(ctx context.Context, village domain.Village, season domain.Season) []domain.ScheduledEvent {
	existing := make(map[string]bool, len(village.ScheduledEvents))
	for _, sched := range village.ScheduledEvents {
		if sched.Season == season {
			existing[sched.EventType] = true
		}
	}

	templates := seasonalTemplates(season)
	var out []domain.ScheduledEvent
	for i, tmpl := range templates {
		if existing[tmpl.Type] {
			continue
		}
		// Stagger due dates across the season.
		offset := 1
		if len(templates) > 1 {
			offset = 1 + i*seasonLeadDays/len(templates)
		}
		out = append(out, domain.ScheduledEvent{
			ID:         s.newID(),
			EventType:  tmpl.Type,
			Category:   tmpl.Category,
			DueAt:      s.now().AddDate(0, 0, offset),
			Recurrence: "seasonal",
			Season:     season,
		})
	}

	logger.FromContext(ctx).Info("seasonal events scheduled",
		"village_id", village.ID,
		"season", season,
		"count", len(out))
	return out
}

// MaterializeScheduled instantiates a due scheduled event as an active
// GameEvent. It returns false when the scheduled type is no longer in the
// catalog, which callers should treat as a silently dropped entry.
func (s *service) MaterializeScheduled(ctx context.Context, sched domain.ScheduledEvent, village domain.Village) (domain.GameEvent, bool) {
	tmpl, ok := eventTemplates[sched.EventType]
	if !ok {
		logger.FromContext(ctx).Warn("scheduled event type not in catalog",
			"village_id", village.ID,
			"event_type", sched.EventType)
		return domain.GameEvent{}, false
	}
	ev := s.materialize(ctx, tmpl, village)
	ev.ParentEventID = sched.ParentID
	return ev, true
}

// CalculateCrisisLevel sums severity weights over the active events and
// clamps to [0,100]. It is a pure aggregate any caller can derive without
// touching per-event state.
func (s *service) CalculateCrisisLevel(activeEvents map[string]*domain.GameEvent) float64 {
	level := 0.0
	for _, ev := range activeEvents {
		if ev == nil || !ev.IsActive {
			continue
		}
		switch ev.Severity {
		case domain.SeverityCatastrophic:
			level += CrisisWeightCatastrophic
		case domain.SeverityMajor:
			level += CrisisWeightMajor
		case domain.SeverityModerate:
			level += CrisisWeightModerate
		case domain.SeverityMinor:
			level += CrisisWeightMinor
		case domain.SeverityBeneficial:
			level += CrisisWeightBeneficial
		}
	}
	return domain.ClampPercent(level)
}
