package resource

import (
	"github.com/aldermoor/villageforge/internal/domain"
)

// seasonProductionMods scales daily production per season. Resources not
// listed are unaffected.
var seasonProductionMods = map[domain.Season]map[domain.ResourceType]float64{
	domain.SeasonSpring: {
		domain.ResourceFood:  1.2,
		domain.ResourceWood:  1.1,
		domain.ResourceWater: 1.3,
	},
	domain.SeasonSummer: {
		domain.ResourceFood:   1.3,
		domain.ResourceWater:  0.8,
		domain.ResourceSpices: 1.2,
	},
	domain.SeasonAutumn: {
		domain.ResourceFood: 1.5,
		domain.ResourceWood: 1.2,
		domain.ResourceWine: 1.3,
	},
	domain.SeasonWinter: {
		domain.ResourceFood:  0.6,
		domain.ResourceWood:  0.8,
		domain.ResourceWater: 0.9,
		domain.ResourceCloth: 1.1,
	},
}

// weatherAffectedResources are the outdoor production chains weather touches.
var weatherAffectedResources = []domain.ResourceType{
	domain.ResourceFood,
	domain.ResourceWood,
	domain.ResourceStone,
}

// ManageSeasonalEffects applies season and weather to the ledger's daily
// flows. Production modifiers compose multiplicatively across season and
// weather; the winter heating and summer cooling surcharges add onto
// consumption. Net flow is recomputed for every resource.
func (s *service) ManageSeasonalEffects(state domain.ResourceState, season domain.Season, weather domain.Weather) domain.ResourceState {
	out := state.Clone()

	if mods, ok := seasonProductionMods[season]; ok {
		for rt, mod := range mods {
			out.DailyProduction[rt] *= mod
		}
	}

	for _, effect := range weather.Effects {
		if effect.Type != "production" {
			continue
		}
		for _, rt := range weatherAffectedResources {
			out.DailyProduction[rt] *= effect.Modifier
		}
	}

	switch season {
	case domain.SeasonWinter:
		out.DailyConsumption[domain.ResourceWood] *= 1 + WinterWoodHeatingSurcharge
	case domain.SeasonSummer:
		out.DailyConsumption[domain.ResourceWater] *= 1 + SummerWaterSurcharge
	}

	for rt := range out.Stocks {
		out.NetFlow[rt] = out.DailyProduction[rt] - out.DailyConsumption[rt]
	}

	return out
}
