package villageevent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func activeEvent(eventType string) *domain.GameEvent {
	tmpl := eventTemplates[eventType]
	return &domain.GameEvent{
		ID:             "ev-1",
		Type:           tmpl.Type,
		Category:       tmpl.Category,
		Severity:       tmpl.Severity,
		Title:          tmpl.Title,
		Description:    tmpl.Fallback,
		Effects:        tmpl.Effects,
		ChainReactions: tmpl.ChainReactions,
		PlayerChoices:  tmpl.PlayerChoices,
		IsActive:       true,
		CreatedAt:      fixedNow(),
	}
}

func TestProcessEvent_AppliesEffectsAndResolves(t *testing.T) {
	engine := newTestEngine(seqRnd(0.99)) // chain rolls all miss
	v := neutralVillage()
	ev := activeEvent("storm")
	v.ActiveEvents[ev.ID] = ev

	result := engine.ProcessEvent(context.Background(), ev, v)

	assert.Equal(t, 45.0, result.Village.Happiness)
	assert.InDelta(t, 90.0, result.Village.Resources.Stocks[domain.ResourceFood].Current, 0.0001)

	assert.True(t, ev.IsResolved)
	assert.False(t, ev.IsActive)
	assert.Equal(t, fixedNow(), ev.ResolvedAt)
	assert.NotContains(t, result.Village.ActiveEvents, ev.ID)

	assert.Equal(t, ResultResolved, result.Outcome.Result)
	assert.Equal(t, ev.ID, result.History.EventID)
	assert.Equal(t, ResultResolved, result.History.Outcome)
	assert.NotEmpty(t, result.History.ShortTermImpact)
	assert.NotEmpty(t, result.History.LongTermImpact)
}

func TestProcessEvent_UnprocessableDegradesGracefully(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()

	cases := map[string]*domain.GameEvent{
		"nil event":      nil,
		"inactive event": {ID: "ev-2", IsActive: false},
		"resolved event": {ID: "ev-3", IsActive: true, IsResolved: true},
	}
	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			result := engine.ProcessEvent(context.Background(), ev, v)

			assert.Equal(t, 45.0, result.Village.Happiness)
			assert.Equal(t, 48.0, result.Village.Stability)
			assert.Equal(t, ResultFailure, result.Outcome.Result)
			assert.NotEmpty(t, result.Outcome.Narrative)
			assert.Empty(t, result.ChainedEvents)
		})
	}
}

func TestCreateEventChains(t *testing.T) {
	t.Run("probability gate", func(t *testing.T) {
		trigger := activeEvent("storm") // flood at 0.3, delayed one day

		// Roll under the probability: the flood schedules.
		engine := newTestEngine(seqRnd(0.1))
		chained, scheduled := engine.CreateEventChains(context.Background(), trigger, neutralVillage())
		assert.Empty(t, chained)
		require.Len(t, scheduled, 1)
		assert.Equal(t, "flood", scheduled[0].EventType)
		assert.Equal(t, trigger.ID, scheduled[0].ParentID)
		assert.Equal(t, fixedNow().AddDate(0, 0, 1), scheduled[0].DueAt)

		// Roll over it: nothing happens.
		engine = newTestEngine(seqRnd(0.9))
		chained, scheduled = engine.CreateEventChains(context.Background(), trigger, neutralVillage())
		assert.Empty(t, chained)
		assert.Empty(t, scheduled)
	})

	t.Run("immediate spawn links lineage", func(t *testing.T) {
		trigger := activeEvent("storm")
		trigger.ChainReactions = []domain.ChainReaction{
			{EventType: "dispute", Probability: 1},
		}

		engine := newTestEngine(seqRnd(0.0))
		chained, scheduled := engine.CreateEventChains(context.Background(), trigger, neutralVillage())

		assert.Empty(t, scheduled)
		require.Len(t, chained, 1)
		assert.Equal(t, "dispute", chained[0].Type)
		assert.Equal(t, trigger.ID, chained[0].ParentEventID)
		assert.True(t, chained[0].IsActive)
	})

	t.Run("condition gate", func(t *testing.T) {
		trigger := activeEvent("market_crash") // dispute gated on low_happiness

		content := neutralVillage() // happiness 50, gate closed
		engine := newTestEngine(seqRnd(0.0))
		chained, _ := engine.CreateEventChains(context.Background(), trigger, content)
		assert.Empty(t, chained)

		miserable := neutralVillage()
		miserable.Happiness = 20
		engine = newTestEngine(seqRnd(0.0))
		chained, _ = engine.CreateEventChains(context.Background(), trigger, miserable)
		require.Len(t, chained, 1)
		assert.Equal(t, "dispute", chained[0].Type)
	})

	t.Run("unknown chained type is skipped", func(t *testing.T) {
		trigger := activeEvent("storm")
		trigger.ChainReactions = []domain.ChainReaction{
			{EventType: "dragon_attack", Probability: 1},
		}

		engine := newTestEngine(seqRnd(0.0))
		chained, scheduled := engine.CreateEventChains(context.Background(), trigger, neutralVillage())
		assert.Empty(t, chained)
		assert.Empty(t, scheduled)
	})
}

func TestProcessEvent_ChainedChildrenLinkBack(t *testing.T) {
	engine := newTestEngine(seqRnd(0.0))
	v := neutralVillage()
	ev := activeEvent("storm")
	ev.ChainReactions = []domain.ChainReaction{
		{EventType: "dispute", Probability: 1},
	}
	v.ActiveEvents[ev.ID] = ev

	result := engine.ProcessEvent(context.Background(), ev, v)

	require.Len(t, result.ChainedEvents, 1)
	assert.Equal(t, []string{result.ChainedEvents[0].ID}, ev.ChildEventIDs)
	assert.Equal(t, []string{result.ChainedEvents[0].ID}, result.Outcome.ChainedIDs)
	assert.Contains(t, result.History.LongTermImpact, "1")
}
