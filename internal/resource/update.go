package resource

import (
	"github.com/aldermoor/villageforge/internal/domain"
)

// UpdateResources advances the ledger by deltaHours. Pure: the input state is
// untouched and the result depends only on the inputs (plus the timestamp).
//
// For each resource, with f = deltaHours/24:
//
//	new = current + production*f*efficiency - consumption*f - current*spoilageRate*f
//
// clamped to [0, maximum]. A negative spoilage rate (wine) adds stock: aging
// appreciates. UsedCapacity is recomputed from the clamped stocks.
func (s *service) UpdateResources(state domain.ResourceState, deltaHours float64) domain.ResourceState {
	out := state.Clone()
	f := deltaHours / 24.0
	now := s.now()

	for rt, stock := range out.Stocks {
		efficiency, ok := out.Efficiency[rt]
		if !ok {
			efficiency = 1.0
		}
		production := out.DailyProduction[rt] * efficiency
		consumption := out.DailyConsumption[rt]

		next := stock.Current + production*f - consumption*f - stock.Current*stock.SpoilageRate*f
		if next < 0 {
			next = 0
		}
		if next > stock.Maximum {
			next = stock.Maximum
		}

		stock.Current = next
		if stock.Reserved > stock.Current {
			stock.Reserved = stock.Current
		}
		stock.LastUpdated = now
		out.Stocks[rt] = stock
	}

	out.TotalCapacity, out.UsedCapacity = capacitySums(out.Stocks)
	return out
}
