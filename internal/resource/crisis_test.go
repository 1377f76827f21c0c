package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func villageWithLedger(state domain.ResourceState) domain.Village {
	return domain.Village{
		ID:        "v-1",
		Name:      "Aldermoor",
		Resources: state,
		Population: domain.Population{
			Total: 100, Children: 25, Adults: 60, Elderly: 15,
		},
	}
}

func TestDetectResourceCrises_SeverityThresholds(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		current  float64
		daily    float64
		expected domain.EventSeverity
	}{
		{"under one day is catastrophic", 4, 20, domain.SeverityCatastrophic},
		{"under two days is major", 30, 20, domain.SeverityMajor},
		{"two and a half days is moderate", 50, 20, domain.SeverityModerate},
		{"five days is minor", 100, 20, domain.SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ledgerWith(domain.ResourceFood, tt.current, 1000, 0, tt.daily, 0)
			crises := svc.DetectResourceCrises(villageWithLedger(state))

			require.Len(t, crises, 1)
			assert.Equal(t, domain.CrisisShortage, crises[0].Type)
			assert.Equal(t, tt.expected, crises[0].Severity)
		})
	}
}

func TestDetectResourceCrises_NoConsumptionNoShortage(t *testing.T) {
	svc := newTestService()
	state := ledgerWith(domain.ResourceStone, 1, 1000, 0, 0, 0)

	crises := svc.DetectResourceCrises(villageWithLedger(state))

	assert.Empty(t, crises, "zero consumption means an infinite horizon")
}

func TestDetectResourceCrises_SortedByUrgencyDescending(t *testing.T) {
	svc := newTestService()
	state := domain.ResourceState{
		Stocks: map[domain.ResourceType]domain.ResourceStock{
			domain.ResourceFood:  {Current: 4, Maximum: 1000, Quality: 75},   // catastrophic shortage
			domain.ResourceWater: {Current: 100, Maximum: 1000, Quality: 75}, // five days, minor
			domain.ResourceWine:  {Current: 100, Maximum: 1000, Quality: 20}, // quality crisis
		},
		DailyProduction: map[domain.ResourceType]float64{},
		DailyConsumption: map[domain.ResourceType]float64{
			domain.ResourceFood:  20,
			domain.ResourceWater: 20,
		},
		NetFlow:    map[domain.ResourceType]float64{},
		Efficiency: map[domain.ResourceType]float64{},
	}

	crises := svc.DetectResourceCrises(villageWithLedger(state))

	require.Len(t, crises, 3)
	for i := 1; i < len(crises); i++ {
		assert.GreaterOrEqual(t, crises[i-1].Urgency, crises[i].Urgency)
	}
	assert.Equal(t, domain.ResourceFood, crises[0].Resource)
}

func TestDetectResourceCrises_QualityDegradation(t *testing.T) {
	svc := newTestService()

	t.Run("below 30 is moderate", func(t *testing.T) {
		state := ledgerWith(domain.ResourceFood, 100, 1000, 0, 0, 0)
		stock := state.Stocks[domain.ResourceFood]
		stock.Quality = 25
		state.Stocks[domain.ResourceFood] = stock

		crises := svc.DetectResourceCrises(villageWithLedger(state))
		require.Len(t, crises, 1)
		assert.Equal(t, domain.CrisisQualityDegraded, crises[0].Type)
		assert.Equal(t, domain.SeverityModerate, crises[0].Severity)
	})

	t.Run("below 10 is major", func(t *testing.T) {
		state := ledgerWith(domain.ResourceFood, 100, 1000, 0, 0, 0)
		stock := state.Stocks[domain.ResourceFood]
		stock.Quality = 5
		state.Stocks[domain.ResourceFood] = stock

		crises := svc.DetectResourceCrises(villageWithLedger(state))
		require.Len(t, crises, 1)
		assert.Equal(t, domain.SeverityMajor, crises[0].Severity)
	})
}

func TestDetectResourceCrises_StorageOverflow(t *testing.T) {
	svc := newTestService()

	t.Run("above 95 percent is moderate", func(t *testing.T) {
		state := ledgerWith(domain.ResourceWood, 960, 1000, 0, 0, 0)
		crises := svc.DetectResourceCrises(villageWithLedger(state))
		require.Len(t, crises, 1)
		assert.Equal(t, domain.CrisisStorageOverflow, crises[0].Type)
		assert.Equal(t, domain.SeverityModerate, crises[0].Severity)
	})

	t.Run("above 99 percent is major", func(t *testing.T) {
		state := ledgerWith(domain.ResourceWood, 995, 1000, 0, 0, 0)
		crises := svc.DetectResourceCrises(villageWithLedger(state))
		require.Len(t, crises, 1)
		assert.Equal(t, domain.SeverityMajor, crises[0].Severity)
	})
}

func TestDetectResourceCrises_NonDepletingCrisisEncodes(t *testing.T) {
	// Overflow and quality crises have no depletion horizon. The infinite
	// sentinel must not leak into the JSON response.
	svc := newTestService()
	state := ledgerWith(domain.ResourceWood, 995, 1000, 0, 0, 0)

	crises := svc.DetectResourceCrises(villageWithLedger(state))
	require.Len(t, crises, 1)
	assert.False(t, crises[0].Depleting())

	raw, err := json.Marshal(crises)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"days_until_depletion":null`)
}

func TestImplementEmergencyProtocols_FeasibilityWeighting(t *testing.T) {
	svc := newTestService()

	crisis := domain.ResourceCrisis{
		Type:     domain.CrisisShortage,
		Resource: domain.ResourceFood,
		Severity: domain.SeverityMajor,
	}

	t.Run("funded village gets full-feasibility plan", func(t *testing.T) {
		state := domain.ResourceState{
			Stocks: map[domain.ResourceType]domain.ResourceStock{
				domain.ResourceFood:  {Current: 10, Maximum: 1000, Quality: 75},
				domain.ResourceGold:  {Current: 500, Maximum: 10000, Quality: 75},
				domain.ResourceTools: {Current: 50, Maximum: 200, Quality: 75},
			},
			DailyProduction:  map[domain.ResourceType]float64{},
			DailyConsumption: map[domain.ResourceType]float64{},
			NetFlow:          map[domain.ResourceType]float64{},
			Efficiency:       map[domain.ResourceType]float64{},
		}
		village := villageWithLedger(state)

		response := svc.ImplementEmergencyProtocols(crisis, village)

		require.NotEmpty(t, response.Actions)
		assert.Greater(t, response.EstimatedEffectiveness, 0.0)
		assert.LessOrEqual(t, response.ExpectedOutcome.SuccessProbability, 95.0)
		for _, action := range response.Actions {
			assert.Equal(t, 100.0, action.Feasibility)
		}
	})

	t.Run("empty treasury drops feasibility and effectiveness", func(t *testing.T) {
		state := domain.ResourceState{
			Stocks: map[domain.ResourceType]domain.ResourceStock{
				domain.ResourceFood:  {Current: 10, Maximum: 1000, Quality: 75},
				domain.ResourceGold:  {Current: 0, Maximum: 10000, Quality: 75},
				domain.ResourceTools: {Current: 0, Maximum: 200, Quality: 75},
			},
			DailyProduction:  map[domain.ResourceType]float64{},
			DailyConsumption: map[domain.ResourceType]float64{},
			NetFlow:          map[domain.ResourceType]float64{},
			Efficiency:       map[domain.ResourceType]float64{},
		}
		poor := villageWithLedger(state)

		response := svc.ImplementEmergencyProtocols(crisis, poor)

		// Procurement and production boost both lack their resource costs.
		var procurement domain.EmergencyAction
		for _, a := range response.Actions {
			if a.Name == "emergency_procurement" {
				procurement = a
			}
		}
		assert.Less(t, procurement.Feasibility, 50.0)
	})

	t.Run("implementation time is the max over actions", func(t *testing.T) {
		village := villageWithLedger(ledgerWith(domain.ResourceFood, 10, 1000, 0, 5, 0))
		response := svc.ImplementEmergencyProtocols(crisis, village)

		maxDays := 0
		for _, a := range response.Actions {
			if a.ImplementationDays > maxDays {
				maxDays = a.ImplementationDays
			}
		}
		assert.Equal(t, maxDays, response.ImplementationDays)
	})
}
