package resource

import (
	"fmt"

	"github.com/aldermoor/villageforge/internal/domain"
)

// conditionModifiers maps a building's physical condition to an efficiency
// multiplier. A perfect building overperforms slightly; ruins barely run.
var conditionModifiers = map[domain.BuildingCondition]float64{
	domain.ConditionPerfect:  1.1,
	domain.ConditionGood:     1.0,
	domain.ConditionWorn:     0.8,
	domain.ConditionDamaged:  0.6,
	domain.ConditionCritical: 0.3,
	domain.ConditionRuins:    0.1,
}

// BuildingEfficiency computes the effective output multiplier of a building
// against the current ledger:
//
//	base x conditionModifier x avgWorkerEfficiency/100 x input availability
//
// Each required input short of its daily need multiplies in
// max(0.1, 1 - shortage) where shortage = (needed-available)/needed.
func BuildingEfficiency(b domain.Building, state domain.ResourceState) float64 {
	cond, ok := conditionModifiers[b.Condition]
	if !ok {
		cond = 1.0
	}

	avgWorker := 0.0
	if len(b.Workers) > 0 {
		for _, w := range b.Workers {
			avgWorker += w.Efficiency
		}
		avgWorker /= float64(len(b.Workers))
	}

	efficiency := b.BaseEfficiency * cond * (avgWorker / WorkerEfficiencyScale)

	for _, input := range b.Consumes {
		if !input.IsRequired || input.DailyNeed <= 0 {
			continue
		}
		available := state.Stocks[input.Resource].Available()
		if available >= input.DailyNeed {
			continue
		}
		shortage := (input.DailyNeed - available) / input.DailyNeed
		penalty := 1 - shortage
		if penalty < InputShortageFloor {
			penalty = InputShortageFloor
		}
		efficiency *= penalty
	}

	return efficiency
}

// requiredInputsAvailable reports whether every required input has any stock
// to draw from. Buildings with a fully missing required input do not run.
func requiredInputsAvailable(b domain.Building, state domain.ResourceState) bool {
	for _, input := range b.Consumes {
		if input.IsRequired && state.Stocks[input.Resource].Available() <= 0 && input.DailyNeed > 0 {
			return false
		}
	}
	return true
}

// ProcessProduction runs one day of building production and deposit
// extraction, returning the updated village and one ResourceUpdate per stock
// change. Production clamps to capacity; deposit yields decay by their
// depletion rate each time they are tapped and never increase.
func (s *service) ProcessProduction(village domain.Village) (domain.Village, []domain.ResourceUpdate) {
	out := village
	out.Resources = village.Resources.Clone()
	out.Deposits = append([]domain.Deposit(nil), village.Deposits...)

	var updates []domain.ResourceUpdate

	for _, b := range out.Buildings {
		if len(b.Produces) == 0 {
			continue
		}
		if !requiredInputsAvailable(b, out.Resources) {
			continue
		}

		efficiency := BuildingEfficiency(b, out.Resources)
		if efficiency <= 0 {
			continue
		}

		// Consume inputs first, pro-rated by efficiency.
		for _, input := range b.Consumes {
			if input.DailyNeed <= 0 {
				continue
			}
			stock := out.Resources.Stocks[input.Resource]
			drawn := input.DailyNeed * efficiency
			if drawn > stock.Available() {
				drawn = stock.Available()
			}
			if drawn <= 0 {
				continue
			}
			prev := stock.Current
			stock.Current -= drawn
			out.Resources.Stocks[input.Resource] = stock
			updates = append(updates, domain.ResourceUpdate{
				Resource: input.Resource,
				Previous: prev,
				New:      stock.Current,
				Change:   -drawn,
				Reason:   fmt.Sprintf("%s input", b.Type),
			})
		}

		for _, output := range b.Produces {
			updates = append(updates, addProduced(&out.Resources, output.Resource, output.DailyAmount*efficiency, b.Type)...)
		}
	}

	// Deposit extraction runs through the designated extraction building.
	for i, dep := range out.Deposits {
		if dep.CurrentYield <= 0 {
			continue
		}
		building, ok := findBuildingByType(out.Buildings, dep.ExtractionBuilding)
		if !ok {
			continue
		}
		efficiency := BuildingEfficiency(building, out.Resources)
		if efficiency <= 0 {
			continue
		}

		extracted := dep.CurrentYield * efficiency
		updates = append(updates, addProduced(&out.Resources, dep.Resource, extracted, dep.ExtractionBuilding)...)

		// Monotonic decay, floored at zero.
		dep.CurrentYield -= dep.CurrentYield * dep.DepletionRate
		if dep.CurrentYield < 0 {
			dep.CurrentYield = 0
		}
		out.Deposits[i] = dep
	}

	out.Resources.TotalCapacity, out.Resources.UsedCapacity = capacitySums(out.Resources.Stocks)
	return out, updates
}

func findBuildingByType(buildings []domain.Building, buildingType string) (domain.Building, bool) {
	for _, b := range buildings {
		if b.Type == buildingType {
			return b, true
		}
	}
	return domain.Building{}, false
}

// addProduced credits amount of rt to the ledger, clamped to capacity, and
// reports the change when any stock actually moved.
func addProduced(state *domain.ResourceState, rt domain.ResourceType, amount float64, source string) []domain.ResourceUpdate {
	if amount <= 0 {
		return nil
	}
	stock, ok := state.Stocks[rt]
	if !ok {
		return nil
	}
	prev := stock.Current
	stock.Current += amount
	if stock.Current > stock.Maximum {
		stock.Current = stock.Maximum
	}
	state.Stocks[rt] = stock
	if stock.Current == prev {
		return nil
	}
	return []domain.ResourceUpdate{{
		Resource: rt,
		Previous: prev,
		New:      stock.Current,
		Change:   stock.Current - prev,
		Reason:   fmt.Sprintf("%s production", source),
	}}
}
