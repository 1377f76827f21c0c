package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldermoor/villageforge/internal/domain"
)

func seasonalLedger() domain.ResourceState {
	return domain.ResourceState{
		Stocks: map[domain.ResourceType]domain.ResourceStock{
			domain.ResourceFood:  {Current: 100, Maximum: 500},
			domain.ResourceWood:  {Current: 100, Maximum: 500},
			domain.ResourceWater: {Current: 100, Maximum: 500},
			domain.ResourceStone: {Current: 100, Maximum: 500},
		},
		DailyProduction: map[domain.ResourceType]float64{
			domain.ResourceFood:  10,
			domain.ResourceWood:  10,
			domain.ResourceWater: 10,
			domain.ResourceStone: 10,
		},
		DailyConsumption: map[domain.ResourceType]float64{
			domain.ResourceFood:  8,
			domain.ResourceWood:  4,
			domain.ResourceWater: 6,
		},
		NetFlow:    map[domain.ResourceType]float64{},
		Efficiency: map[domain.ResourceType]float64{},
	}
}

func TestManageSeasonalEffects_WinterProductionAndHeating(t *testing.T) {
	svc := newTestService()

	out := svc.ManageSeasonalEffects(seasonalLedger(), domain.SeasonWinter, domain.Weather{})

	assert.InDelta(t, 6.0, out.DailyProduction[domain.ResourceFood], 0.0001)
	assert.InDelta(t, 8.0, out.DailyProduction[domain.ResourceWood], 0.0001)
	// Heating surcharge adds half again onto wood consumption.
	assert.InDelta(t, 6.0, out.DailyConsumption[domain.ResourceWood], 0.0001)
	// Stone has no winter modifier.
	assert.InDelta(t, 10.0, out.DailyProduction[domain.ResourceStone], 0.0001)
}

func TestManageSeasonalEffects_SummerWaterSurcharge(t *testing.T) {
	svc := newTestService()

	out := svc.ManageSeasonalEffects(seasonalLedger(), domain.SeasonSummer, domain.Weather{})

	assert.InDelta(t, 8.0, out.DailyProduction[domain.ResourceWater], 0.0001)
	assert.InDelta(t, 7.8, out.DailyConsumption[domain.ResourceWater], 0.0001)
}

func TestManageSeasonalEffects_WeatherComposesMultiplicatively(t *testing.T) {
	svc := newTestService()
	storm := domain.Weather{
		Condition: "storm",
		Effects:   []domain.WeatherEffect{{Type: "production", Modifier: 0.5}},
	}

	out := svc.ManageSeasonalEffects(seasonalLedger(), domain.SeasonSpring, storm)

	// Spring 1.2 x storm 0.5 on food.
	assert.InDelta(t, 6.0, out.DailyProduction[domain.ResourceFood], 0.0001)
	// Stone has no spring modifier but is weather-affected outdoors work.
	assert.InDelta(t, 5.0, out.DailyProduction[domain.ResourceStone], 0.0001)
	// Water is not weather-affected; only the spring modifier applies.
	assert.InDelta(t, 13.0, out.DailyProduction[domain.ResourceWater], 0.0001)
}

func TestManageSeasonalEffects_NonProductionWeatherEffectIgnored(t *testing.T) {
	svc := newTestService()
	weather := domain.Weather{
		Condition: "rain",
		Effects:   []domain.WeatherEffect{{Type: "happiness", Modifier: 0.5}},
	}

	base := seasonalLedger()
	out := svc.ManageSeasonalEffects(base, domain.SeasonSpring, weather)
	plain := svc.ManageSeasonalEffects(seasonalLedger(), domain.SeasonSpring, domain.Weather{})

	assert.Equal(t, plain.DailyProduction, out.DailyProduction)
}

func TestManageSeasonalEffects_RecomputesNetFlowAndLeavesInputUntouched(t *testing.T) {
	svc := newTestService()
	in := seasonalLedger()

	out := svc.ManageSeasonalEffects(in, domain.SeasonWinter, domain.Weather{})

	for rt := range out.Stocks {
		assert.InDelta(t, out.DailyProduction[rt]-out.DailyConsumption[rt], out.NetFlow[rt], 0.0001)
	}
	// The caller's ledger is untouched.
	assert.InDelta(t, 10.0, in.DailyProduction[domain.ResourceFood], 0.0001)
	assert.InDelta(t, 4.0, in.DailyConsumption[domain.ResourceWood], 0.0001)
}
