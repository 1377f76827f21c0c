package villageevent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func TestHandlePlayerChoice_SuccessBand(t *testing.T) {
	// dispute/mediate: success 70, critical 15. Roll 0.5 -> 50: success.
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()
	ev := activeEvent("dispute")
	v.ActiveEvents[ev.ID] = ev

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "mediate", v)

	require.NoError(t, err)
	assert.Equal(t, ResultSuccess, result.Outcome.Result)
	assert.Equal(t, "mediate", result.Outcome.ChoiceID)
	assert.Equal(t, 55.0, result.Village.Happiness)
	assert.Equal(t, 55.0, result.Village.Stability)
	assert.Equal(t, "Patient mediation cools tempers and the families shake hands.", result.Outcome.Narrative)

	assert.True(t, ev.IsResolved)
	assert.NotContains(t, result.Village.ActiveEvents, ev.ID)
	assert.Equal(t, ResultSuccess, result.History.Outcome)
}

func TestHandlePlayerChoice_CriticalBandCheckedFirst(t *testing.T) {
	// Roll 0.1 -> 10, inside the critical band (15).
	engine := newTestEngine(seqRnd(0.1))
	v := neutralVillage()
	ev := activeEvent("dispute")

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "mediate", v)

	require.NoError(t, err)
	assert.Equal(t, ResultCriticalSuccess, result.Outcome.Result)
	// Critical effects scaled by 1.5: +8 happiness becomes +12.
	assert.InDelta(t, 62.0, result.Village.Happiness, 0.0001)
	assert.InDelta(t, 62.0, result.Village.Stability, 0.0001)
	assert.Equal(t, "Your ruling is hailed as wise beyond measure; the families feast together.", result.Outcome.Narrative)
}

func TestHandlePlayerChoice_FailureBand(t *testing.T) {
	// Roll 0.9 -> 90, past the success chance of 70.
	engine := newTestEngine(seqRnd(0.9))
	v := neutralVillage()
	ev := activeEvent("dispute")

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "mediate", v)

	require.NoError(t, err)
	assert.Equal(t, ResultFailure, result.Outcome.Result)
	assert.Equal(t, 45.0, result.Village.Happiness)
	assert.Equal(t, 45.0, result.Village.Stability)
}

func TestHandlePlayerChoice_CostDeductedBeforeRoll(t *testing.T) {
	// dispute/bribe costs 50 gold; success 90, roll 0.5 -> success (+5 stability).
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()
	ev := activeEvent("dispute")

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "bribe", v)

	require.NoError(t, err)
	assert.Equal(t, ResultSuccess, result.Outcome.Result)
	assert.Equal(t, 250.0, result.Village.Resources.Stocks[domain.ResourceGold].Current)
	assert.Equal(t, 55.0, result.Village.Stability)
	// The caller's village is untouched.
	assert.Equal(t, 300.0, v.Resources.Stocks[domain.ResourceGold].Current)
}

func TestHandlePlayerChoice_CostDeductedEvenOnFailedRoll(t *testing.T) {
	// bribe: success 90, roll 0.95 -> failure, but the gold is already spent.
	engine := newTestEngine(seqRnd(0.95))
	v := neutralVillage()
	ev := activeEvent("dispute")

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "bribe", v)

	require.NoError(t, err)
	assert.Equal(t, ResultFailure, result.Outcome.Result)
	assert.Equal(t, 250.0, result.Village.Resources.Stocks[domain.ResourceGold].Current)
}

func TestHandlePlayerChoice_UnaffordableChoicePenalizesWithoutSpending(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()
	gold := v.Resources.Stocks[domain.ResourceGold]
	gold.Current = 10
	v.Resources.Stocks[domain.ResourceGold] = gold
	ev := activeEvent("dispute")

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "bribe", v)

	require.NoError(t, err)
	assert.Equal(t, ResultFailure, result.Outcome.Result)
	assert.Equal(t, 45.0, result.Village.Happiness)
	assert.Equal(t, 48.0, result.Village.Stability)
	// Nothing was spent.
	assert.Equal(t, 10.0, result.Village.Resources.Stocks[domain.ResourceGold].Current)
	// The event stays open for another attempt.
	assert.False(t, ev.IsResolved)
}

func TestHandlePlayerChoice_RequirementsHeldNotSpent(t *testing.T) {
	// bandit_raid/pursue requires 5 weapons but does not consume them.
	engine := newTestEngine(seqRnd(0.3)) // 30 < 60: success
	v := neutralVillage()
	ev := activeEvent("bandit_raid")

	result, err := engine.HandlePlayerChoice(context.Background(), ev, "pursue", v)

	require.NoError(t, err)
	assert.Equal(t, ResultSuccess, result.Outcome.Result)
	assert.Equal(t, 10.0, result.Village.Resources.Stocks[domain.ResourceWeapons].Current)
	assert.Equal(t, 330.0, result.Village.Resources.Stocks[domain.ResourceGold].Current)
}

func TestHandlePlayerChoice_Errors(t *testing.T) {
	engine := newTestEngine(seqRnd(0.5))
	v := neutralVillage()

	t.Run("nil event", func(t *testing.T) {
		_, err := engine.HandlePlayerChoice(context.Background(), nil, "mediate", v)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("inactive event", func(t *testing.T) {
		ev := activeEvent("dispute")
		ev.IsActive = false
		_, err := engine.HandlePlayerChoice(context.Background(), ev, "mediate", v)
		assert.ErrorIs(t, err, domain.ErrEventNotActive)
	})

	t.Run("resolved event", func(t *testing.T) {
		ev := activeEvent("dispute")
		ev.IsResolved = true
		_, err := engine.HandlePlayerChoice(context.Background(), ev, "mediate", v)
		assert.ErrorIs(t, err, domain.ErrEventAlreadyResolved)
	})

	t.Run("unknown choice", func(t *testing.T) {
		ev := activeEvent("dispute")
		_, err := engine.HandlePlayerChoice(context.Background(), ev, "duel", v)
		assert.ErrorIs(t, err, domain.ErrChoiceNotFound)
	})
}
