package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService() Service {
	return NewService(fixedNow)
}

// ledgerWith builds a single-resource state for focused update tests.
func ledgerWith(rt domain.ResourceType, current, maximum, production, consumption, spoilage float64) domain.ResourceState {
	return domain.ResourceState{
		Stocks: map[domain.ResourceType]domain.ResourceStock{
			rt: {Current: current, Maximum: maximum, Quality: 75, SpoilageRate: spoilage},
		},
		DailyProduction:  map[domain.ResourceType]float64{rt: production},
		DailyConsumption: map[domain.ResourceType]float64{rt: consumption},
		NetFlow:          map[domain.ResourceType]float64{rt: production - consumption},
		Efficiency:       map[domain.ResourceType]float64{rt: 1.0},
	}
}

func TestUpdateResources_Conservation(t *testing.T) {
	svc := newTestService()

	cfg := domain.VillageConfig{
		Name:     "Aldermoor",
		Location: "plains",
		Population: domain.Population{
			Total: 120, Children: 30, Adults: 70, Elderly: 20,
			BirthRate: 20, DeathRate: 12,
		},
		StartingAmounts: map[domain.ResourceType]float64{
			domain.ResourceFood:  500,
			domain.ResourceWater: 800,
			domain.ResourceGold:  200,
		},
	}
	state := svc.InitializeResources(cfg)

	for _, deltaHours := range []float64{1, 6, 24, 72, 24 * 30} {
		next := svc.UpdateResources(state, deltaHours)
		for rt, stock := range next.Stocks {
			assert.GreaterOrEqual(t, stock.Current, 0.0, "resource %s went negative after %vh", rt, deltaHours)
			assert.LessOrEqual(t, stock.Current, stock.Maximum, "resource %s exceeded capacity after %vh", rt, deltaHours)
		}
	}
}

func TestUpdateResources_ZeroTickIsIdentity(t *testing.T) {
	svc := newTestService()
	state := ledgerWith(domain.ResourceFood, 100, 500, 10, 5, 0.02)

	next := svc.UpdateResources(state, 0)

	assert.Equal(t, 100.0, next.Stocks[domain.ResourceFood].Current)
	// Input state untouched.
	assert.Equal(t, 100.0, state.Stocks[domain.ResourceFood].Current)
}

func TestUpdateResources_SpoilageOnlyDecay(t *testing.T) {
	svc := newTestService()
	state := ledgerWith(domain.ResourceFood, 100, 500, 0, 0, 0.02)

	next := svc.UpdateResources(state, 24)

	assert.InDelta(t, 98.0, next.Stocks[domain.ResourceFood].Current, 0.0001)
}

func TestUpdateResources_ShortageClampsToZero(t *testing.T) {
	svc := newTestService()
	state := ledgerWith(domain.ResourceFood, 10, 500, 0, 20, 0)

	next := svc.UpdateResources(state, 24)

	assert.Equal(t, 0.0, next.Stocks[domain.ResourceFood].Current)
}

func TestUpdateResources_ProductionClampsToCapacity(t *testing.T) {
	svc := newTestService()
	state := ledgerWith(domain.ResourceFood, 450, 500, 100, 0, 0)

	next := svc.UpdateResources(state, 24)

	assert.LessOrEqual(t, next.Stocks[domain.ResourceFood].Current, 500.0)
}

func TestUpdateResources_WineAppreciates(t *testing.T) {
	svc := newTestService()
	// Negative spoilage rate: aging adds stock. The sign convention is
	// deliberate; the clamp to capacity keeps it bounded.
	state := ledgerWith(domain.ResourceWine, 100, 200, 0, 0, -0.001)

	next := svc.UpdateResources(state, 24)

	assert.InDelta(t, 100.1, next.Stocks[domain.ResourceWine].Current, 0.0001)
	assert.Greater(t, next.Stocks[domain.ResourceWine].Current, 100.0)

	// And it never climbs past the cellar's capacity.
	full := ledgerWith(domain.ResourceWine, 200, 200, 0, 0, -0.001)
	next = svc.UpdateResources(full, 24*365)
	assert.Equal(t, 200.0, next.Stocks[domain.ResourceWine].Current)
}

func TestUpdateResources_UsedCapacityMatchesStockSum(t *testing.T) {
	svc := newTestService()
	state := svc.InitializeResources(domain.VillageConfig{
		Location:   "forest",
		Population: domain.Population{Total: 80, Children: 20, Adults: 45, Elderly: 15},
		StartingAmounts: map[domain.ResourceType]float64{
			domain.ResourceWood: 300,
			domain.ResourceFood: 200,
		},
	})

	next := svc.UpdateResources(state, 24)

	sum := 0.0
	for _, stock := range next.Stocks {
		sum += stock.Current
	}
	assert.InDelta(t, sum, next.UsedCapacity, 0.0001)
}

func TestUpdateResources_ReservedNeverExceedsCurrent(t *testing.T) {
	svc := newTestService()
	state := ledgerWith(domain.ResourceIron, 50, 300, 0, 40, 0)
	stock := state.Stocks[domain.ResourceIron]
	stock.Reserved = 45
	state.Stocks[domain.ResourceIron] = stock

	next := svc.UpdateResources(state, 24)

	got := next.Stocks[domain.ResourceIron]
	assert.LessOrEqual(t, got.Reserved, got.Current)
}

func TestInitializeResources_Deterministic(t *testing.T) {
	svc := newTestService()
	cfg := domain.VillageConfig{
		Name:     "Aldermoor",
		Location: "mountains",
		Population: domain.Population{
			Total: 200, Children: 50, Adults: 120, Elderly: 30,
			BirthRate: 18, DeathRate: 10,
		},
		StartingAmounts: map[domain.ResourceType]float64{domain.ResourceStone: 100},
	}

	a := svc.InitializeResources(cfg)
	b := svc.InitializeResources(cfg)

	assert.Equal(t, a, b)
	require.Contains(t, a.Stocks, domain.ResourceStone)
	assert.Equal(t, 100.0, a.Stocks[domain.ResourceStone].Current)
	assert.Equal(t, 75.0, a.Stocks[domain.ResourceStone].Quality)

	// Capacity scales with population: 200 heads = 2x the base table.
	assert.InDelta(t, domain.ResourceCatalog[domain.ResourceStone].BaseCapacity*2, a.Stocks[domain.ResourceStone].Maximum, 0.0001)

	// Every catalogued type gets a stock; nothing else does.
	assert.Len(t, a.Stocks, len(domain.ResourceCatalog))
	for rt := range a.Stocks {
		assert.True(t, domain.IsValidResourceType(rt))
	}
}
