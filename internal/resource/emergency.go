package resource

import (
	"fmt"

	"github.com/aldermoor/villageforge/internal/domain"
)

// ImplementEmergencyProtocols builds a mitigation plan for one crisis. The
// plan's overall effectiveness is the feasibility-weighted average of its
// actions; feasibility drops for actions whose resource costs the village
// cannot (comfortably) cover or whose preconditions are missing.
func (s *service) ImplementEmergencyProtocols(crisis domain.ResourceCrisis, village domain.Village) domain.EmergencyResponse {
	var actions []domain.EmergencyAction
	switch crisis.Type {
	case domain.CrisisShortage:
		actions = shortageActions(crisis)
	case domain.CrisisQualityDegraded:
		actions = qualityActions(crisis)
	case domain.CrisisStorageOverflow:
		actions = overflowActions(crisis)
	}

	weightedSum := 0.0
	weightTotal := 0.0
	maxDays := 0
	for i, action := range actions {
		feasibility := actionFeasibility(action, village)
		actions[i].Feasibility = feasibility

		weightedSum += action.Effectiveness * feasibility
		weightTotal += feasibility
		if action.ImplementationDays > maxDays {
			maxDays = action.ImplementationDays
		}
	}

	effectiveness := 0.0
	if weightTotal > 0 {
		effectiveness = weightedSum / weightTotal
	}

	successProbability := effectiveness
	if successProbability > MaxSuccessProbability {
		successProbability = MaxSuccessProbability
	}

	return domain.EmergencyResponse{
		Crisis:                 crisis,
		Actions:                actions,
		EstimatedEffectiveness: effectiveness,
		ImplementationDays:     maxDays,
		ExpectedOutcome: domain.EmergencyOutcome{
			SuccessProbability: successProbability,
			Description:        fmt.Sprintf("mitigate %s of %s", crisis.Type, crisis.Resource),
		},
	}
}

// actionFeasibility starts at 100 and subtracts penalties for unaffordable or
// tight resource costs and for missing preconditions (idle hands, treasury).
func actionFeasibility(action domain.EmergencyAction, village domain.Village) float64 {
	feasibility := 100.0

	for _, cost := range action.ResourceCost {
		available := village.Resources.Stocks[cost.Resource].Available()
		if available < cost.Amount {
			feasibility -= FeasibilityPenaltyInsufficient
		} else if available < cost.Amount*WarningHeadroomFactor {
			feasibility -= FeasibilityPenaltyTight
		}
	}

	// Preconditions: organized labor needs a working population, purchases
	// need treasury funds.
	if village.Population.Adults == 0 {
		feasibility -= FeasibilityPenaltyTight
	}
	if len(action.ResourceCost) > 0 && village.Treasury() <= 0 {
		feasibility -= FeasibilityPenaltyTight
	}

	if feasibility < 0 {
		feasibility = 0
	}
	return feasibility
}

func shortageActions(crisis domain.ResourceCrisis) []domain.EmergencyAction {
	rt := crisis.Resource
	return []domain.EmergencyAction{
		{
			Name:               "rationing",
			Description:        fmt.Sprintf("cut daily %s consumption by half", rt),
			Effectiveness:      60,
			ImplementationDays: 1,
		},
		{
			Name:          "emergency_procurement",
			Description:   fmt.Sprintf("buy %s from neighboring settlements", rt),
			Effectiveness: 80,
			ResourceCost: []domain.TransactionCost{
				{Resource: domain.ResourceGold, Amount: 100},
			},
			ImplementationDays: 3,
		},
		{
			Name:          "production_boost",
			Description:   fmt.Sprintf("redirect workers to %s production", rt),
			Effectiveness: 50,
			ResourceCost: []domain.TransactionCost{
				{Resource: domain.ResourceTools, Amount: 5},
			},
			ImplementationDays: 2,
		},
	}
}

func qualityActions(crisis domain.ResourceCrisis) []domain.EmergencyAction {
	rt := crisis.Resource
	return []domain.EmergencyAction{
		{
			Name:               "quality_inspection",
			Description:        fmt.Sprintf("discard spoiled %s and isolate the rest", rt),
			Effectiveness:      70,
			ImplementationDays: 1,
		},
		{
			Name:          "storage_improvement",
			Description:   fmt.Sprintf("reline the %s stores", rt),
			Effectiveness: 55,
			ResourceCost: []domain.TransactionCost{
				{Resource: domain.ResourceLumber, Amount: 10},
				{Resource: domain.ResourceGold, Amount: 50},
			},
			ImplementationDays: 4,
		},
	}
}

func overflowActions(crisis domain.ResourceCrisis) []domain.EmergencyAction {
	rt := crisis.Resource
	return []domain.EmergencyAction{
		{
			Name:          "storage_expansion",
			Description:   fmt.Sprintf("raise a temporary granary annex for %s", rt),
			Effectiveness: 75,
			ResourceCost: []domain.TransactionCost{
				{Resource: domain.ResourceWood, Amount: 30},
				{Resource: domain.ResourceGold, Amount: 80},
			},
			ImplementationDays: 5,
		},
		{
			Name:               "surplus_sale",
			Description:        fmt.Sprintf("sell surplus %s on the next caravan", rt),
			Effectiveness:      60,
			ImplementationDays: 2,
		},
	}
}
