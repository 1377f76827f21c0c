package resource

import (
	"fmt"

	"github.com/aldermoor/villageforge/internal/domain"
)

// OptimizeResourceDistribution reviews buildings and storage, recommending
// upgrades for underperformers and expansion for packed stores. ROI projects
// the monthly savings against the one-time cost; any stock under three days
// of consumption escalates the whole result to critical.
func (s *service) OptimizeResourceDistribution(village domain.Village) domain.OptimizationResult {
	var recs []domain.OptimizationRecommendation

	for _, b := range village.Buildings {
		if len(b.Produces) == 0 {
			continue
		}
		efficiency := BuildingEfficiency(b, village.Resources)
		if efficiency >= UpgradeEfficiencyThreshold {
			continue
		}

		// Savings approximate the output recovered by closing the gap.
		lostOutput := 0.0
		for _, p := range b.Produces {
			lostOutput += p.DailyAmount * (UpgradeEfficiencyThreshold - efficiency)
		}
		recs = append(recs, domain.OptimizationRecommendation{
			Target: b.ID,
			Action: "upgrade",
			Reason: fmt.Sprintf("%s running at %.0f%% efficiency", b.Type, efficiency*100),
			ImplementationCost: []domain.TransactionCost{
				{Resource: domain.ResourceLumber, Amount: 20},
				{Resource: domain.ResourceTools, Amount: 5},
				{Resource: domain.ResourceGold, Amount: 60},
			},
			PotentialSavings: lostOutput * ROIHorizonDays,
		})
	}

	for rt, stock := range village.Resources.Stocks {
		if stock.Maximum <= 0 {
			continue
		}
		utilization := stock.Current / stock.Maximum
		if utilization <= StorageUtilizationThreshold {
			continue
		}
		recs = append(recs, domain.OptimizationRecommendation{
			Target: "storage",
			Action: "build_warehouse",
			Reason: fmt.Sprintf("%s storage at %.0f%% utilization", rt, utilization*100),
			ImplementationCost: []domain.TransactionCost{
				{Resource: domain.ResourceWood, Amount: 40},
				{Resource: domain.ResourceStone, Amount: 20},
				{Resource: domain.ResourceGold, Amount: 120},
			},
			PotentialSavings: stock.Current * stock.SpoilageRate * ROIHorizonDays,
		})
	}

	totalCost := 0.0
	totalSavings := 0.0
	for _, rec := range recs {
		for _, cost := range rec.ImplementationCost {
			if cost.Resource == domain.ResourceGold {
				totalCost += cost.Amount
			}
		}
		totalSavings += rec.PotentialSavings
	}

	roi := 0.0
	if totalCost > 0 {
		roi = (totalSavings / totalCost) * ROIHorizonDays
	}

	priority := priorityFromROI(roi, len(recs))

	// A resource on the edge of depletion overrides everything.
	for rt, stock := range village.Resources.Stocks {
		consumption := village.Resources.DailyConsumption[rt]
		if consumption > 0 && stock.Current/consumption < CriticalSupplyDays {
			priority = domain.PriorityCritical
			break
		}
	}

	return domain.OptimizationResult{
		Recommendations: recs,
		TotalCost:       totalCost,
		ExpectedROI:     roi,
		Priority:        priority,
	}
}

func priorityFromROI(roi float64, recommendations int) domain.OptimizationPriority {
	switch {
	case recommendations == 0:
		return domain.PriorityLow
	case roi > 50:
		return domain.PriorityHigh
	case roi > 10:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
