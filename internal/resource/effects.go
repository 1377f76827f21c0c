package resource

import (
	"github.com/aldermoor/villageforge/internal/domain"
)

// ApplyEffects folds event effects into the village aggregate. Percentage
// fields clamp to [0,100]; resource deltas clamp to [0, capacity]; population
// never drops below zero. The input village is not mutated.
func (s *service) ApplyEffects(village domain.Village, effects domain.EventEffects) domain.Village {
	out := village
	out.Resources = village.Resources.Clone()

	out.Happiness = domain.ClampPercent(village.Happiness + effects.Happiness)
	out.Stability = domain.ClampPercent(village.Stability + effects.Stability)
	out.Prosperity = domain.ClampPercent(village.Prosperity + effects.Prosperity)
	out.Defense = domain.ClampPercent(village.Defense + effects.Defense)

	if effects.Population != 0 {
		pop := out.Population
		pop.Total += effects.Population
		if pop.Total < 0 {
			pop.Total = 0
		}
		// Losses and gains land on the adult cohort; demographic drift is a
		// population-model concern, not an event one.
		pop.Adults += effects.Population
		if pop.Adults < 0 {
			pop.Adults = 0
		}
		out.Population = pop
	}

	for rt, delta := range effects.Resources {
		stock, ok := out.Resources.Stocks[rt]
		if !ok {
			continue
		}
		stock.Current += delta
		if stock.Current < 0 {
			stock.Current = 0
		}
		if stock.Current > stock.Maximum {
			stock.Current = stock.Maximum
		}
		if stock.Reserved > stock.Current {
			stock.Reserved = stock.Current
		}
		out.Resources.Stocks[rt] = stock
	}

	out.Resources.TotalCapacity, out.Resources.UsedCapacity = capacitySums(out.Resources.Stocks)
	return out
}
