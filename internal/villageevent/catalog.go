package villageevent

import (
	"sort"

	"github.com/aldermoor/villageforge/internal/domain"
)

// eventTemplate is one candidate event type: its category, severity, default
// effects and resolution structure. Templates are static data; generation
// materializes them into GameEvents.
type eventTemplate struct {
	Type     string
	Category domain.EventCategory
	Severity domain.EventSeverity
	Title    string
	Fallback string

	Effects        domain.EventEffects
	ChainReactions []domain.ChainReaction
	PlayerChoices  []domain.PlayerChoice

	// Seasons the type is appropriate for. Empty means any season.
	Seasons []domain.Season

	// TypeModifier scales the base per-type probability.
	TypeModifier float64
}

// categoryBaseWeights are the unadjusted selection weights.
var categoryBaseWeights = map[domain.EventCategory]float64{
	domain.CategoryNatural:  30,
	domain.CategorySocial:   25,
	domain.CategoryEconomic: 25,
	domain.CategoryMagical:  10,
	domain.CategoryCrisis:   10,
}

// orderedCategories fixes the iteration order for weighted selection so a
// given roll always lands on the same category.
var orderedCategories = []domain.EventCategory{
	domain.CategoryNatural,
	domain.CategorySocial,
	domain.CategoryEconomic,
	domain.CategoryMagical,
	domain.CategoryCrisis,
}

var eventTemplates = map[string]eventTemplate{
	"storm": {
		Type:     "storm",
		Category: domain.CategoryNatural,
		Severity: domain.SeverityModerate,
		Title:    "A Storm Breaks",
		Fallback: "Dark clouds roll in from the horizon and a fierce storm lashes the village.",
		Effects: domain.EventEffects{
			Happiness: -5,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceFood: -10,
				domain.ResourceWood: -5,
			},
		},
		ChainReactions: []domain.ChainReaction{
			{EventType: "flood", Probability: 0.3, DelayDays: 1},
		},
		Seasons:      []domain.Season{domain.SeasonSpring, domain.SeasonAutumn},
		TypeModifier: 1.2,
	},
	"flood": {
		Type:     "flood",
		Category: domain.CategoryNatural,
		Severity: domain.SeverityMajor,
		Title:    "The River Overflows",
		Fallback: "Swollen by rain, the river bursts its banks and floods the lower fields.",
		Effects: domain.EventEffects{
			Happiness: -10,
			Stability: -5,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceFood:  -25,
				domain.ResourceStone: -10,
			},
		},
		Seasons:      []domain.Season{domain.SeasonSpring},
		TypeModifier: 0.8,
	},
	"bountiful_harvest": {
		Type:     "bountiful_harvest",
		Category: domain.CategoryNatural,
		Severity: domain.SeverityBeneficial,
		Title:    "Bountiful Harvest",
		Fallback: "The fields yield far beyond expectation and the granaries strain at their doors.",
		Effects: domain.EventEffects{
			Happiness: 10,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceFood: 40,
			},
		},
		Seasons:      []domain.Season{domain.SeasonAutumn},
		TypeModifier: 1.0,
	},
	"festival": {
		Type:     "festival",
		Category: domain.CategorySocial,
		Severity: domain.SeverityBeneficial,
		Title:    "Village Festival",
		Fallback: "Musicians and merchants fill the square as the village celebrates late into the night.",
		Effects: domain.EventEffects{
			Happiness: 15,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceFood: -15,
				domain.ResourceWine: -5,
			},
		},
		Seasons:      []domain.Season{domain.SeasonSummer},
		TypeModifier: 1.0,
	},
	"dispute": {
		Type:     "dispute",
		Category: domain.CategorySocial,
		Severity: domain.SeverityMinor,
		Title:    "A Bitter Dispute",
		Fallback: "Two prominent families quarrel over a boundary stone, and neighbors take sides.",
		Effects: domain.EventEffects{
			Happiness: -5,
			Stability: -5,
		},
		PlayerChoices: []domain.PlayerChoice{
			{
				ID:                    "mediate",
				Label:                 "Mediate the dispute personally",
				SuccessChance:         70,
				CriticalSuccessChance: 15,
				Success: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Happiness: 5, Stability: 5},
					Narrative: "Patient mediation cools tempers and the families shake hands.",
				},
				CriticalSuccess: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Happiness: 8, Stability: 8},
					Narrative: "Your ruling is hailed as wise beyond measure; the families feast together.",
				},
				Failure: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Happiness: -5, Stability: -5},
					Narrative: "The mediation collapses into shouting and both families storm off.",
				},
			},
			{
				ID:    "bribe",
				Label: "Pay both families to settle",
				ResourceCost: []domain.TransactionCost{
					{Resource: domain.ResourceGold, Amount: 50},
				},
				SuccessChance:         90,
				CriticalSuccessChance: 5,
				Success: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Stability: 5},
					Narrative: "Gold smooths what words could not.",
				},
				CriticalSuccess: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Stability: 8, Prosperity: 2},
					Narrative: "The settlement is so generous that both families become loyal allies.",
				},
				Failure: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Happiness: -3, Stability: -3},
					Narrative: "The families take the gold and keep feuding.",
				},
			},
		},
		TypeModifier: 1.1,
	},
	"merchant_caravan": {
		Type:     "merchant_caravan",
		Category: domain.CategoryEconomic,
		Severity: domain.SeverityBeneficial,
		Title:    "Merchant Caravan Arrives",
		Fallback: "A dusty caravan rolls through the gates, its wagons heavy with distant goods.",
		Effects: domain.EventEffects{
			Prosperity: 5,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceGold:   20,
				domain.ResourceSpices: 5,
			},
		},
		TypeModifier: 1.0,
	},
	"market_crash": {
		Type:     "market_crash",
		Category: domain.CategoryEconomic,
		Severity: domain.SeverityMajor,
		Title:    "Market Prices Collapse",
		Fallback: "Word arrives that prices have collapsed in the regional markets.",
		Effects: domain.EventEffects{
			Prosperity: -15,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceGold: -40,
			},
		},
		ChainReactions: []domain.ChainReaction{
			{EventType: "dispute", Probability: 0.25, Condition: "low_happiness"},
		},
		TypeModifier: 0.9,
	},
	"wandering_mystic": {
		Type:     "wandering_mystic",
		Category: domain.CategoryMagical,
		Severity: domain.SeverityMinor,
		Title:    "A Wandering Mystic",
		Fallback: "A robed stranger offers blessings at the well in exchange for a meal.",
		Effects: domain.EventEffects{
			Happiness: 3,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceKnowledge: 5,
				domain.ResourceFaith:     3,
			},
		},
		TypeModifier: 0.7,
	},
	"plague": {
		Type:     "plague",
		Category: domain.CategoryCrisis,
		Severity: domain.SeverityCatastrophic,
		Title:    "Plague in the Streets",
		Fallback: "A sickness spreads from house to house and the village holds its breath.",
		Effects: domain.EventEffects{
			Happiness:  -20,
			Stability:  -15,
			Population: -5,
		},
		ChainReactions: []domain.ChainReaction{
			{EventType: "dispute", Probability: 0.4, DelayDays: 2},
		},
		TypeModifier: 0.5,
	},
	"bandit_raid": {
		Type:     "bandit_raid",
		Category: domain.CategoryCrisis,
		Severity: domain.SeverityMajor,
		Title:    "Bandits Strike",
		Fallback: "Riders descend on the outlying farms, torching barns and driving off livestock.",
		Effects: domain.EventEffects{
			Happiness: -10,
			Stability: -10,
			Defense:   -5,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceFood: -20,
				domain.ResourceGold: -30,
			},
		},
		PlayerChoices: []domain.PlayerChoice{
			{
				ID:    "pursue",
				Label: "Muster the militia and pursue",
				Requirements: []domain.TransactionCost{
					{Resource: domain.ResourceWeapons, Amount: 5},
				},
				SuccessChance:         60,
				CriticalSuccessChance: 10,
				Success: domain.ChoiceOutcome{
					Effects: domain.EventEffects{
						Stability: 8,
						Defense:   5,
						Resources: map[domain.ResourceType]float64{domain.ResourceGold: 30},
					},
					Narrative: "The militia runs the bandits down and recovers the stolen goods.",
				},
				CriticalSuccess: domain.ChoiceOutcome{
					Effects: domain.EventEffects{
						Stability: 12,
						Defense:   8,
						Resources: map[domain.ResourceType]float64{domain.ResourceGold: 60},
					},
					Narrative: "The militia captures the bandit chief and his entire hoard.",
				},
				Failure: domain.ChoiceOutcome{
					Effects:   domain.EventEffects{Stability: -5, Population: -2},
					Narrative: "The pursuit ends in ambush; the militia limps home.",
				},
			},
		},
		Seasons:      []domain.Season{domain.SeasonSummer, domain.SeasonAutumn},
		TypeModifier: 0.8,
	},
	"harsh_winter": {
		Type:     "harsh_winter",
		Category: domain.CategoryNatural,
		Severity: domain.SeverityMajor,
		Title:    "The Deep Cold",
		Fallback: "An iron frost settles over the village and the woodpiles shrink by the day.",
		Effects: domain.EventEffects{
			Happiness: -8,
			Resources: map[domain.ResourceType]float64{
				domain.ResourceWood: -30,
				domain.ResourceFood: -15,
			},
		},
		Seasons:      []domain.Season{domain.SeasonWinter},
		TypeModifier: 1.0,
	},
}

// templatesByCategory indexes the catalog for category-then-type selection.
var templatesByCategory = func() map[domain.EventCategory][]eventTemplate {
	out := make(map[domain.EventCategory][]eventTemplate)
	for _, tmpl := range eventTemplates {
		out[tmpl.Category] = append(out[tmpl.Category], tmpl)
	}
	for _, list := range out {
		sortTemplates(list)
	}
	return out
}()

func sortTemplates(list []eventTemplate) {
	sort.Slice(list, func(i, j int) bool { return list[i].Type < list[j].Type })
}

// seasonalTemplates returns the types appropriate to a season.
func seasonalTemplates(season domain.Season) []eventTemplate {
	var out []eventTemplate
	for _, tmpl := range eventTemplates {
		for _, s := range tmpl.Seasons {
			if s == season {
				out = append(out, tmpl)
				break
			}
		}
	}
	sortTemplates(out)
	return out
}
