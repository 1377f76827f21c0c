package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldermoor/villageforge/internal/domain"
)

func TestApplyEffects_StatsClampToPercentRange(t *testing.T) {
	svc := newTestService()
	v := villageWithLedger(productionLedger())
	v.Happiness = 90
	v.Stability = 10
	v.Prosperity = 50
	v.Defense = 50

	out := svc.ApplyEffects(v, domain.EventEffects{
		Happiness: 25,
		Stability: -30,
	})

	assert.Equal(t, 100.0, out.Happiness)
	assert.Equal(t, 0.0, out.Stability)
	assert.Equal(t, 50.0, out.Prosperity)
}

func TestApplyEffects_PopulationLossLandsOnAdults(t *testing.T) {
	svc := newTestService()
	v := villageWithLedger(productionLedger())
	v.Population = domain.Population{Total: 100, Children: 20, Adults: 60, Elderly: 20}

	out := svc.ApplyEffects(v, domain.EventEffects{Population: -10})

	assert.Equal(t, 90, out.Population.Total)
	assert.Equal(t, 50, out.Population.Adults)
	assert.Equal(t, 20, out.Population.Children)

	// A loss bigger than the cohort floors at zero.
	wiped := svc.ApplyEffects(v, domain.EventEffects{Population: -200})
	assert.Equal(t, 0, wiped.Population.Total)
	assert.Equal(t, 0, wiped.Population.Adults)
}

func TestApplyEffects_ResourceDeltasClampAndKeepReservedConsistent(t *testing.T) {
	svc := newTestService()
	state := productionLedger()
	state.Stocks[domain.ResourceWood] = domain.ResourceStock{Current: 50, Maximum: 500, Reserved: 40}
	v := villageWithLedger(state)

	out := svc.ApplyEffects(v, domain.EventEffects{
		Resources: map[domain.ResourceType]float64{
			domain.ResourceWood:  -30,
			domain.ResourceStone: 1000,
			domain.ResourceSilk:  10, // not stocked, ignored
		},
	})

	wood := out.Resources.Stocks[domain.ResourceWood]
	assert.Equal(t, 20.0, wood.Current)
	assert.Equal(t, 20.0, wood.Reserved, "reserved follows the stock down")

	assert.Equal(t, 400.0, out.Resources.Stocks[domain.ResourceStone].Current)
	assert.NotContains(t, out.Resources.Stocks, domain.ResourceSilk)

	// Input untouched.
	assert.Equal(t, 50.0, v.Resources.Stocks[domain.ResourceWood].Current)
}
