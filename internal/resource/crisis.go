package resource

import (
	"fmt"
	"math"
	"sort"

	"github.com/aldermoor/villageforge/internal/domain"
)

// DetectResourceCrises scans the ledger for shortages, quality degradation
// and storage overflow, returning crises sorted by descending urgency.
// Crises are derived views: nothing here persists or mutates.
func (s *service) DetectResourceCrises(village domain.Village) []domain.ResourceCrisis {
	var crises []domain.ResourceCrisis
	state := village.Resources

	for rt, stock := range state.Stocks {
		consumption := state.DailyConsumption[rt]

		// Shortage: finite depletion horizon under a week.
		if consumption > 0 {
			days := stock.Current / consumption
			if days < ShortageHorizonDays {
				crises = append(crises, shortageCrisis(rt, days))
			}
		}

		// Quality degradation.
		if stock.Quality < QualityCrisisThreshold {
			severity := domain.SeverityModerate
			urgency := 40.0
			if stock.Quality < QualityMajorThreshold {
				severity = domain.SeverityMajor
				urgency = 60.0
			}
			crises = append(crises, domain.ResourceCrisis{
				Type:               domain.CrisisQualityDegraded,
				Resource:           rt,
				Severity:           severity,
				DaysUntilDepletion: math.Inf(1),
				Urgency:            urgency,
				Impact: domain.CrisisImpact{
					Happiness: -5,
					Health:    -10,
				},
				SuggestedActions: []string{
					fmt.Sprintf("rotate spoiled %s out of storage", rt),
					fmt.Sprintf("improve %s storage conditions", rt),
				},
			})
		}

		// Storage overflow.
		if stock.Maximum > 0 {
			utilization := stock.Current / stock.Maximum
			if utilization > OverflowUtilization {
				severity := domain.SeverityModerate
				urgency := 30.0
				if utilization > OverflowMajorUtilization {
					severity = domain.SeverityMajor
					urgency = 50.0
				}
				crises = append(crises, domain.ResourceCrisis{
					Type:               domain.CrisisStorageOverflow,
					Resource:           rt,
					Severity:           severity,
					DaysUntilDepletion: math.Inf(1),
					Urgency:            urgency,
					Impact: domain.CrisisImpact{
						Economy: -5,
					},
					SuggestedActions: []string{
						fmt.Sprintf("build additional storage for %s", rt),
						fmt.Sprintf("sell surplus %s", rt),
					},
				})
			}
		}
	}

	sort.SliceStable(crises, func(i, j int) bool {
		return crises[i].Urgency > crises[j].Urgency
	})
	return crises
}

// shortageCrisis grades a depletion horizon: under a day is catastrophic,
// under two major, under four moderate, otherwise minor.
func shortageCrisis(rt domain.ResourceType, days float64) domain.ResourceCrisis {
	var severity domain.EventSeverity
	var urgency float64
	switch {
	case days < 1:
		severity = domain.SeverityCatastrophic
		urgency = 100 - days*10
	case days < 2:
		severity = domain.SeverityMajor
		urgency = 85 - days*5
	case days < 4:
		severity = domain.SeverityModerate
		urgency = 70 - days*5
	default:
		severity = domain.SeverityMinor
		urgency = 50 - days*3
	}

	impact := domain.CrisisImpact{Economy: -5, BuildingEfficiency: -10}
	if rt == domain.ResourceFood || rt == domain.ResourceWater {
		impact.Health = -20
		impact.Happiness = -15
	}

	return domain.ResourceCrisis{
		Type:               domain.CrisisShortage,
		Resource:           rt,
		Severity:           severity,
		DaysUntilDepletion: days,
		Urgency:            urgency,
		Impact:             impact,
		SuggestedActions: []string{
			fmt.Sprintf("ration %s", rt),
			fmt.Sprintf("raise production of %s", rt),
			fmt.Sprintf("trade for %s", rt),
		},
	}
}
