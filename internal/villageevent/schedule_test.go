package villageevent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func TestScheduleSeasonalEvents(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()

	scheduled := engine.ScheduleSeasonalEvents(context.Background(), v, domain.SeasonSpring)

	// Spring carries flood and storm.
	require.Len(t, scheduled, 2)
	types := []string{scheduled[0].EventType, scheduled[1].EventType}
	assert.ElementsMatch(t, []string{"flood", "storm"}, types)
	for _, sched := range scheduled {
		assert.Equal(t, "seasonal", sched.Recurrence)
		assert.Equal(t, domain.SeasonSpring, sched.Season)
		assert.True(t, sched.DueAt.After(fixedNow()))
		assert.NotEmpty(t, sched.ID)
	}
}

func TestScheduleSeasonalEvents_SkipsAlreadyScheduled(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()
	v.ScheduledEvents = []domain.ScheduledEvent{
		{EventType: "storm", Season: domain.SeasonSpring, Recurrence: "seasonal"},
	}

	scheduled := engine.ScheduleSeasonalEvents(context.Background(), v, domain.SeasonSpring)

	require.Len(t, scheduled, 1)
	assert.Equal(t, "flood", scheduled[0].EventType)
}

func TestScheduleSeasonalEvents_WinterTypes(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))

	scheduled := engine.ScheduleSeasonalEvents(context.Background(), neutralVillage(), domain.SeasonWinter)

	require.Len(t, scheduled, 1)
	assert.Equal(t, "harsh_winter", scheduled[0].EventType)
}

func TestCalculateCrisisLevel(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))

	active := func(severities ...domain.EventSeverity) map[string]*domain.GameEvent {
		out := make(map[string]*domain.GameEvent, len(severities))
		for i, sev := range severities {
			id := string(rune('a' + i))
			out[id] = &domain.GameEvent{ID: id, Severity: sev, IsActive: true}
		}
		return out
	}

	t.Run("weights sum", func(t *testing.T) {
		level := engine.CalculateCrisisLevel(active(domain.SeverityCatastrophic, domain.SeverityMinor))
		assert.Equal(t, 42.0, level)
	})

	t.Run("beneficial events relieve pressure", func(t *testing.T) {
		level := engine.CalculateCrisisLevel(active(domain.SeverityMajor, domain.SeverityBeneficial))
		assert.Equal(t, 20.0, level)
	})

	t.Run("clamps to the percent range", func(t *testing.T) {
		assert.Equal(t, 0.0, engine.CalculateCrisisLevel(active(domain.SeverityBeneficial)))
		level := engine.CalculateCrisisLevel(active(
			domain.SeverityCatastrophic, domain.SeverityCatastrophic, domain.SeverityCatastrophic))
		assert.Equal(t, 100.0, level)
	})

	t.Run("ignores inactive and empty", func(t *testing.T) {
		events := active(domain.SeverityCatastrophic)
		events["a"].IsActive = false
		assert.Equal(t, 0.0, engine.CalculateCrisisLevel(events))
		assert.Equal(t, 0.0, engine.CalculateCrisisLevel(nil))
	})
}
