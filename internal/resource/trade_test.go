package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func tradingVillage() domain.Village {
	state := domain.ResourceState{
		Stocks: map[domain.ResourceType]domain.ResourceStock{
			domain.ResourceWood: {Current: 100, Maximum: 800, Quality: 75},
			domain.ResourceIron: {Current: 5, Maximum: 300, Quality: 75},
			domain.ResourceGold: {Current: 300, Maximum: 10000, Quality: 75},
		},
		DailyProduction: map[domain.ResourceType]float64{},
		DailyConsumption: map[domain.ResourceType]float64{
			domain.ResourceIron: 2, // 2.5 days of supply: scarce import
		},
		NetFlow:    map[domain.ResourceType]float64{},
		Efficiency: map[domain.ResourceType]float64{},
	}
	v := villageWithLedger(state)
	v.TradeRoutes = []domain.TradeRoute{
		{
			ID:          "route-1",
			Destination: "Thornfield",
			IsActive:    true,
			TravelDays:  3,
			RiskLevel:   20,
			RouteCost:   10,
			Goods: []domain.TradeGood{
				{Resource: domain.ResourceWood, Direction: domain.TradeExport, Quantity: 50, UnitPrice: 3},
				{Resource: domain.ResourceIron, Direction: domain.TradeImport, Quantity: 20, UnitPrice: 4},
			},
		},
	}
	return v
}

func TestEvaluateTradeOpportunities_RanksByRiskAdjustedProfit(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()
	v.TradeRoutes = append(v.TradeRoutes, domain.TradeRoute{
		ID:          "route-risky",
		Destination: "Blackmarsh",
		IsActive:    true,
		TravelDays:  3,
		RiskLevel:   95,
		Goods: []domain.TradeGood{
			{Resource: domain.ResourceWood, Direction: domain.TradeExport, Quantity: 50, UnitPrice: 3},
		},
	})

	opportunities := svc.EvaluateTradeOpportunities(v)

	require.Len(t, opportunities, 2)
	for i := 1; i < len(opportunities); i++ {
		assert.GreaterOrEqual(t, opportunities[i-1].Score, opportunities[i].Score)
	}
	for _, opp := range opportunities {
		assert.InDelta(t, opp.TotalProfit/(1+opp.Risk/100), opp.Score, 0.0001)
	}
}

func TestEvaluateTradeOpportunities_ScarcityBonus(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()

	scarce := svc.EvaluateTradeOpportunities(v)

	// Flood the iron stores: the import bonus disappears.
	stock := v.Resources.Stocks[domain.ResourceIron]
	stock.Current = 300
	v.Resources.Stocks[domain.ResourceIron] = stock

	plentiful := svc.EvaluateTradeOpportunities(v)

	require.Len(t, scarce, 1)
	require.Len(t, plentiful, 1)
	assert.Greater(t, scarce[0].ImportBenefit, plentiful[0].ImportBenefit)
}

func TestEvaluateTradeOpportunities_SkipsInactiveRoutes(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()
	v.TradeRoutes[0].IsActive = false

	assert.Empty(t, svc.EvaluateTradeOpportunities(v))
}

func TestExecuteTrade_Success(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()

	next, result, err := svc.ExecuteTrade("route-1", v)

	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, 50.0, next.Resources.Stocks[domain.ResourceWood].Current)
	assert.Equal(t, 25.0, next.Resources.Stocks[domain.ResourceIron].Current)

	// Gold settles: +150 export revenue, -80 imports, -10 route cost.
	assert.InDelta(t, 360.0, next.Resources.Stocks[domain.ResourceGold].Current, 0.0001)
	assert.InDelta(t, 60.0, result.NetProfit, 0.0001)

	assert.Equal(t, 1, next.TradeRoutes[0].TradesThisMonth)
	assert.NotEmpty(t, result.Updates)
}

func TestExecuteTrade_AtomicOnInsufficientStock(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()
	stock := v.Resources.Stocks[domain.ResourceWood]
	stock.Current = 30 // below the 50 the route exports
	v.Resources.Stocks[domain.ResourceWood] = stock

	next, result, err := svc.ExecuteTrade("route-1", v)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Reason, domain.ErrMsgInsufficientStock)

	// Nothing moved.
	assert.Equal(t, 30.0, next.Resources.Stocks[domain.ResourceWood].Current)
	assert.Equal(t, 5.0, next.Resources.Stocks[domain.ResourceIron].Current)
	assert.Equal(t, 300.0, next.Resources.Stocks[domain.ResourceGold].Current)
	assert.Equal(t, 0, next.TradeRoutes[0].TradesThisMonth)
}

func TestExecuteTrade_AtomicOnInsufficientFunds(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()
	gold := v.Resources.Stocks[domain.ResourceGold]
	gold.Current = 0
	v.Resources.Stocks[domain.ResourceGold] = gold

	next, result, err := svc.ExecuteTrade("route-1", v)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Reason, domain.ErrMsgInsufficientFunds)

	// Export revenue of 150 would cover the 90 owed, but settlement happens
	// after payment and cannot front it. Nothing moved.
	assert.Equal(t, 100.0, next.Resources.Stocks[domain.ResourceWood].Current)
	assert.Equal(t, 5.0, next.Resources.Stocks[domain.ResourceIron].Current)
	assert.Equal(t, 0, next.TradeRoutes[0].TradesThisMonth)
}

func TestExecuteTrade_ImportOverflowIsLost(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()
	stock := v.Resources.Stocks[domain.ResourceIron]
	stock.Current = 295 // capacity 300, importing 20
	v.Resources.Stocks[domain.ResourceIron] = stock

	next, result, err := svc.ExecuteTrade("route-1", v)

	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 300.0, next.Resources.Stocks[domain.ResourceIron].Current)

	var ironUpdate domain.ResourceUpdate
	for _, u := range result.Updates {
		if u.Resource == domain.ResourceIron {
			ironUpdate = u
		}
	}
	assert.Equal(t, 5.0, ironUpdate.Change, "only 5 of 20 imported units fit")
}

func TestExecuteTrade_UnknownRoute(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.ExecuteTrade("no-such-route", tradingVillage())
	assert.ErrorIs(t, err, domain.ErrRouteNotFound)
}

func TestExecuteTrade_InactiveRoute(t *testing.T) {
	svc := newTestService()
	v := tradingVillage()
	v.TradeRoutes[0].IsActive = false

	_, _, err := svc.ExecuteTrade("route-1", v)
	assert.ErrorIs(t, err, domain.ErrRouteInactive)
}
