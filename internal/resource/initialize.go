package resource

import (
	"github.com/aldermoor/villageforge/internal/domain"
)

// locationProductionBias favors the resources a village's surroundings offer.
var locationProductionBias = map[string]map[domain.ResourceType]float64{
	"plains":    {domain.ResourceFood: 1.4, domain.ResourceWater: 1.1},
	"forest":    {domain.ResourceWood: 1.5, domain.ResourceFood: 1.1},
	"mountains": {domain.ResourceStone: 1.5, domain.ResourceIron: 1.4, domain.ResourceFood: 0.8},
	"coast":     {domain.ResourceFood: 1.3, domain.ResourceWater: 0.9, domain.ResourceSilk: 1.2},
	"river":     {domain.ResourceWater: 1.5, domain.ResourceFood: 1.2},
}

// InitializeResources builds the starting ledger for a village. Deterministic
// given cfg: stocks come from starting amounts (default 0), capacities from
// the catalog scaled by population, quality starts at the standard grade, and
// daily flows derive from population size and location.
func (s *service) InitializeResources(cfg domain.VillageConfig) domain.ResourceState {
	now := s.now()
	popScale := float64(cfg.Population.Total) / CapacityPopulationReference

	state := domain.ResourceState{
		Stocks:           make(map[domain.ResourceType]domain.ResourceStock, len(domain.ResourceCatalog)),
		DailyProduction:  make(map[domain.ResourceType]float64, len(domain.ResourceCatalog)),
		DailyConsumption: make(map[domain.ResourceType]float64, len(domain.ResourceCatalog)),
		NetFlow:          make(map[domain.ResourceType]float64, len(domain.ResourceCatalog)),
		Efficiency:       make(map[domain.ResourceType]float64, len(domain.ResourceCatalog)),
	}

	bias := locationProductionBias[cfg.Location]

	for rt, entry := range domain.ResourceCatalog {
		maximum := entry.BaseCapacity * popScale
		if maximum <= 0 {
			maximum = entry.BaseCapacity
		}

		current := cfg.StartingAmounts[rt]
		if current > maximum {
			current = maximum
		}

		state.Stocks[rt] = domain.ResourceStock{
			Current:      current,
			Maximum:      maximum,
			Reserved:     0,
			Quality:      InitialQuality,
			SpoilageRate: entry.SpoilageRate,
			LastUpdated:  now,
		}

		production := entry.BaseProduction * popScale
		if b, ok := bias[rt]; ok {
			production *= b
		}
		consumption := dailyDemandFor(rt, cfg.Population)

		state.DailyProduction[rt] = production
		state.DailyConsumption[rt] = consumption
		state.NetFlow[rt] = production - consumption
		state.Efficiency[rt] = 1.0
	}

	state.TotalCapacity, state.UsedCapacity = capacitySums(state.Stocks)
	return state
}

// dailyDemandFor sums the per-demographic catalog consumption for one resource.
func dailyDemandFor(rt domain.ResourceType, pop domain.Population) float64 {
	rates := domain.ResourceCatalog[rt].Consumption
	return float64(pop.Children)*rates.Child +
		float64(pop.Adults)*rates.Adult +
		float64(pop.Elderly)*rates.Elder
}

func capacitySums(stocks map[domain.ResourceType]domain.ResourceStock) (total, used float64) {
	for _, stock := range stocks {
		total += stock.Maximum
		used += stock.Current
	}
	return total, used
}
