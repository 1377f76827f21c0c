package resource

import (
	"github.com/aldermoor/villageforge/internal/domain"
)

// CalculateConsumption projects the population onto per-resource demand.
// Children weigh half an adult, elderly sit between. Food and water carry
// survival-critical urgent fractions; luxury wants scale with population size
// independent of survival demand; projected growth scales total demand by the
// net per-mille growth rate.
func (s *service) CalculateConsumption(pop domain.Population) domain.ResourceDemand {
	demand := domain.ResourceDemand{
		TotalDemand:     make(map[domain.ResourceType]float64, len(domain.ResourceCatalog)),
		UrgentNeeds:     make(map[domain.ResourceType]float64),
		LuxuryWants:     make(map[domain.ResourceType]float64),
		ProjectedGrowth: make(map[domain.ResourceType]float64, len(domain.ResourceCatalog)),
	}

	growthRate := (pop.BirthRate - pop.DeathRate) / 1000.0

	for rt, entry := range domain.ResourceCatalog {
		total := dailyDemandFor(rt, pop)
		demand.TotalDemand[rt] = total
		demand.ProjectedGrowth[rt] = total * growthRate

		switch rt {
		case domain.ResourceFood:
			demand.UrgentNeeds[rt] = total * UrgentFoodFraction
		case domain.ResourceWater:
			demand.UrgentNeeds[rt] = total * UrgentWaterFraction
		}

		if entry.Group == domain.GroupLuxury {
			excess := pop.Total - LuxuryPopulationThreshold
			if excess > 0 {
				demand.LuxuryWants[rt] = float64(excess) * LuxuryWantPerHead
			}
		}
	}

	return demand
}
