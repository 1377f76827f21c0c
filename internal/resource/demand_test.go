package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldermoor/villageforge/internal/domain"
)

func TestCalculateConsumption_DemographicWeighting(t *testing.T) {
	svc := newTestService()
	pop := domain.Population{Total: 100, Children: 20, Adults: 60, Elderly: 20}

	demand := svc.CalculateConsumption(pop)

	entry := domain.ResourceCatalog[domain.ResourceFood]
	want := float64(pop.Children)*entry.Consumption.Child +
		float64(pop.Adults)*entry.Consumption.Adult +
		float64(pop.Elderly)*entry.Consumption.Elder
	assert.InDelta(t, want, demand.TotalDemand[domain.ResourceFood], 0.0001)
}

func TestCalculateConsumption_UrgentFractions(t *testing.T) {
	svc := newTestService()
	pop := domain.Population{Total: 100, Adults: 100}

	demand := svc.CalculateConsumption(pop)

	assert.InDelta(t, demand.TotalDemand[domain.ResourceFood]*UrgentFoodFraction,
		demand.UrgentNeeds[domain.ResourceFood], 0.0001)
	assert.InDelta(t, demand.TotalDemand[domain.ResourceWater]*UrgentWaterFraction,
		demand.UrgentNeeds[domain.ResourceWater], 0.0001)
	assert.NotContains(t, demand.UrgentNeeds, domain.ResourceWood)
}

func TestCalculateConsumption_LuxuryWantsScaleAboveThreshold(t *testing.T) {
	svc := newTestService()

	small := svc.CalculateConsumption(domain.Population{Total: 40, Adults: 40})
	assert.Empty(t, small.LuxuryWants)

	large := svc.CalculateConsumption(domain.Population{Total: 150, Adults: 150})
	want := float64(150-LuxuryPopulationThreshold) * LuxuryWantPerHead
	assert.InDelta(t, want, large.LuxuryWants[domain.ResourceWine], 0.0001)
	assert.NotContains(t, large.LuxuryWants, domain.ResourceFood)
}

func TestCalculateConsumption_ProjectedGrowthFollowsNetRate(t *testing.T) {
	svc := newTestService()

	growing := svc.CalculateConsumption(domain.Population{Total: 100, Adults: 100, BirthRate: 25, DeathRate: 10})
	shrinking := svc.CalculateConsumption(domain.Population{Total: 100, Adults: 100, BirthRate: 5, DeathRate: 20})

	assert.InDelta(t, growing.TotalDemand[domain.ResourceFood]*0.015,
		growing.ProjectedGrowth[domain.ResourceFood], 0.0001)
	assert.Negative(t, shrinking.ProjectedGrowth[domain.ResourceFood])
}

func TestCalculateConsumption_CoversWholeCatalog(t *testing.T) {
	svc := newTestService()

	demand := svc.CalculateConsumption(domain.Population{Total: 100, Adults: 100})

	assert.Len(t, demand.TotalDemand, len(domain.ResourceCatalog))
	assert.Len(t, demand.ProjectedGrowth, len(domain.ResourceCatalog))
}
