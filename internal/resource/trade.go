package resource

import (
	"fmt"
	"sort"

	"github.com/aldermoor/villageforge/internal/domain"
)

// EvaluateTradeOpportunities scores every active route. Exports are scored
// by profit = revenue - (production + transport + risk) costs; imports by
// benefit - cost, where scarce goods earn a supply-band bonus. Results rank
// by profit discounted for route risk.
func (s *service) EvaluateTradeOpportunities(village domain.Village) []domain.TradeOpportunity {
	var opportunities []domain.TradeOpportunity

	for _, route := range village.TradeRoutes {
		if !route.IsActive {
			continue
		}

		exportProfit := 0.0
		importBenefit := 0.0

		for _, good := range route.Goods {
			revenue := good.Quantity * good.UnitPrice
			switch good.Direction {
			case domain.TradeExport:
				transport := revenue * TransportCostPerDayFactor * float64(route.TravelDays)
				riskCost := revenue * RiskCostFactor * route.RiskLevel
				productionCost := revenue * ProductionCostFactor
				exportProfit += revenue - (productionCost + transport + riskCost)
			case domain.TradeImport:
				benefit := revenue * (1 + scarcityBonus(village.Resources, good.Resource))
				importBenefit += benefit - revenue - route.RouteCost/float64(maxInt(len(route.Goods), 1))
			}
		}

		total := exportProfit + importBenefit
		opportunities = append(opportunities, domain.TradeOpportunity{
			RouteID:       route.ID,
			Destination:   route.Destination,
			ExportProfit:  exportProfit,
			ImportBenefit: importBenefit,
			TotalProfit:   total,
			Risk:          route.RiskLevel,
			Score:         total / (1 + route.RiskLevel/100),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Score > opportunities[j].Score
	})
	return opportunities
}

// scarcityBonus rewards importing goods the village is running out of.
// Bonus applies only below a fourteen-day supply, tiered at three, seven and
// fourteen days.
func scarcityBonus(state domain.ResourceState, rt domain.ResourceType) float64 {
	consumption := state.DailyConsumption[rt]
	if consumption <= 0 {
		return 0
	}
	days := state.Stocks[rt].Current / consumption
	switch {
	case days < ScarcityBandCriticalDays:
		return ScarcityBonusCritical
	case days < ScarcityBandLowDays:
		return ScarcityBonusLow
	case days < ScarcityBandModestDays:
		return ScarcityBonusModest
	default:
		return 0
	}
}

// ExecuteTrade runs one trade over a route, all-or-nothing: any missing
// export stock or treasury shortfall aborts before a single stock moves.
// Imports cap at capacity; overflow is lost in transit and visible as
// actualImport < quantity in the updates.
func (s *service) ExecuteTrade(routeID string, village domain.Village) (domain.Village, domain.TradeResult, error) {
	routeIdx := -1
	for i, r := range village.TradeRoutes {
		if r.ID == routeID {
			routeIdx = i
			break
		}
	}
	if routeIdx == -1 {
		return village, domain.TradeResult{RouteID: routeID}, domain.ErrRouteNotFound
	}
	route := village.TradeRoutes[routeIdx]
	if !route.IsActive {
		return village, domain.TradeResult{RouteID: routeID}, domain.ErrRouteInactive
	}

	// Preflight: exports must be in stock, imports plus route cost funded.
	exportRevenue := 0.0
	importCost := route.RouteCost
	for _, good := range route.Goods {
		switch good.Direction {
		case domain.TradeExport:
			available := village.Resources.Stocks[good.Resource].Available()
			if available < good.Quantity {
				return village, domain.TradeResult{
					RouteID: routeID,
					Reason:  fmt.Sprintf("%s: %s need %g, have %g", domain.ErrMsgInsufficientStock, good.Resource, good.Quantity, available),
				}, nil
			}
			exportRevenue += good.Quantity * good.UnitPrice
		case domain.TradeImport:
			importCost += good.Quantity * good.UnitPrice
		}
	}

	// The treasury alone must cover imports and the route cost. Export
	// revenue settles afterward, it cannot front the payment.
	goldAvailable := village.Resources.Stocks[domain.ResourceGold].Available()
	if goldAvailable < importCost {
		return village, domain.TradeResult{
			RouteID: routeID,
			Reason:  fmt.Sprintf("%s: need %g gold, have %g", domain.ErrMsgInsufficientFunds, importCost, goldAvailable),
		}, nil
	}

	// Commit. Work on a cloned ledger so no partial mutation escapes.
	out := village
	out.Resources = village.Resources.Clone()
	out.TradeRoutes = append([]domain.TradeRoute(nil), village.TradeRoutes...)

	var updates []domain.ResourceUpdate
	for _, good := range route.Goods {
		stock := out.Resources.Stocks[good.Resource]
		prev := stock.Current
		switch good.Direction {
		case domain.TradeExport:
			stock.Current -= good.Quantity
		case domain.TradeImport:
			stock.Current += good.Quantity
			if stock.Current > stock.Maximum {
				// Overflow above capacity is lost; the gap between the
				// manifest quantity and the applied change records it.
				stock.Current = stock.Maximum
			}
		}
		out.Resources.Stocks[good.Resource] = stock
		updates = append(updates, domain.ResourceUpdate{
			Resource: good.Resource,
			Previous: prev,
			New:      stock.Current,
			Change:   stock.Current - prev,
			Reason:   fmt.Sprintf("trade with %s", route.Destination),
		})
	}

	// Settle gold: export revenue in, import and route costs out.
	gold := out.Resources.Stocks[domain.ResourceGold]
	prevGold := gold.Current
	gold.Current += exportRevenue - importCost
	if gold.Current > gold.Maximum {
		gold.Current = gold.Maximum
	}
	if gold.Current < 0 {
		gold.Current = 0
	}
	out.Resources.Stocks[domain.ResourceGold] = gold
	updates = append(updates, domain.ResourceUpdate{
		Resource: domain.ResourceGold,
		Previous: prevGold,
		New:      gold.Current,
		Change:   gold.Current - prevGold,
		Reason:   fmt.Sprintf("trade settlement with %s", route.Destination),
	})

	route.LastTrade = s.now()
	route.TradesThisMonth++
	out.TradeRoutes[routeIdx] = route

	out.Resources.TotalCapacity, out.Resources.UsedCapacity = capacitySums(out.Resources.Stocks)

	return out, domain.TradeResult{
		RouteID:   routeID,
		Success:   true,
		Updates:   updates,
		NetProfit: exportRevenue - importCost,
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
