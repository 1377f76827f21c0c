package domain

// CatalogEntry is the static description of one resource type: storage
// capacity for a reference population of 100, signed daily spoilage rate, and
// base per-head daily production/consumption coefficients per demographic
// group (children, adults, elderly).
type CatalogEntry struct {
	Group          ResourceGroup
	BaseCapacity   float64
	SpoilageRate   float64
	BaseProduction float64
	Consumption    DemographicRates
}

// DemographicRates holds per-head daily consumption for each demographic
// group. Children consume less than adults; elderly sit between.
type DemographicRates struct {
	Child float64
	Adult float64
	Elder float64
}

// ResourceCatalog enumerates every resource type. The simulation treats this
// as immutable; nothing extends it at runtime.
var ResourceCatalog = map[ResourceType]CatalogEntry{
	ResourceFood:  {Group: GroupSurvival, BaseCapacity: 1000, SpoilageRate: 0.02, BaseProduction: 2.2, Consumption: DemographicRates{Child: 1.0, Adult: 2.0, Elder: 1.5}},
	ResourceWater: {Group: GroupSurvival, BaseCapacity: 2000, SpoilageRate: 0.01, BaseProduction: 3.5, Consumption: DemographicRates{Child: 1.5, Adult: 3.0, Elder: 2.5}},

	ResourceWood:  {Group: GroupRaw, BaseCapacity: 800, SpoilageRate: 0.001, BaseProduction: 1.5, Consumption: DemographicRates{Child: 0.1, Adult: 0.5, Elder: 0.3}},
	ResourceStone: {Group: GroupRaw, BaseCapacity: 600, SpoilageRate: 0, BaseProduction: 0.8, Consumption: DemographicRates{Child: 0, Adult: 0.2, Elder: 0.1}},
	ResourceIron:  {Group: GroupRaw, BaseCapacity: 300, SpoilageRate: 0.0005, BaseProduction: 0.4, Consumption: DemographicRates{Child: 0, Adult: 0.1, Elder: 0.05}},

	ResourceLumber:  {Group: GroupProcessed, BaseCapacity: 400, SpoilageRate: 0.001, BaseProduction: 0.6, Consumption: DemographicRates{Child: 0, Adult: 0.15, Elder: 0.1}},
	ResourceTools:   {Group: GroupProcessed, BaseCapacity: 200, SpoilageRate: 0.002, BaseProduction: 0.3, Consumption: DemographicRates{Child: 0, Adult: 0.1, Elder: 0.05}},
	ResourceWeapons: {Group: GroupProcessed, BaseCapacity: 150, SpoilageRate: 0.001, BaseProduction: 0.1, Consumption: DemographicRates{Child: 0, Adult: 0.02, Elder: 0}},
	ResourceCloth:   {Group: GroupProcessed, BaseCapacity: 300, SpoilageRate: 0.003, BaseProduction: 0.4, Consumption: DemographicRates{Child: 0.2, Adult: 0.3, Elder: 0.25}},
	ResourcePottery: {Group: GroupProcessed, BaseCapacity: 250, SpoilageRate: 0.001, BaseProduction: 0.3, Consumption: DemographicRates{Child: 0.05, Adult: 0.1, Elder: 0.1}},
	ResourceBooks:   {Group: GroupProcessed, BaseCapacity: 100, SpoilageRate: 0.001, BaseProduction: 0.05, Consumption: DemographicRates{Child: 0.02, Adult: 0.02, Elder: 0.03}},

	ResourceSpices:  {Group: GroupLuxury, BaseCapacity: 100, SpoilageRate: 0.005, BaseProduction: 0.05, Consumption: DemographicRates{Child: 0.01, Adult: 0.05, Elder: 0.03}},
	ResourceJewelry: {Group: GroupLuxury, BaseCapacity: 50, SpoilageRate: 0, BaseProduction: 0.02, Consumption: DemographicRates{Child: 0, Adult: 0.01, Elder: 0.01}},
	ResourceArt:     {Group: GroupLuxury, BaseCapacity: 80, SpoilageRate: 0.001, BaseProduction: 0.03, Consumption: DemographicRates{Child: 0, Adult: 0.01, Elder: 0.02}},
	ResourceWine:    {Group: GroupLuxury, BaseCapacity: 200, SpoilageRate: -0.001, BaseProduction: 0.2, Consumption: DemographicRates{Child: 0, Adult: 0.15, Elder: 0.1}},
	ResourceSilk:    {Group: GroupLuxury, BaseCapacity: 60, SpoilageRate: 0.002, BaseProduction: 0.01, Consumption: DemographicRates{Child: 0, Adult: 0.01, Elder: 0.01}},

	ResourceGold: {Group: GroupCurrency, BaseCapacity: 10000, SpoilageRate: 0, BaseProduction: 0.5, Consumption: DemographicRates{Child: 0, Adult: 0.3, Elder: 0.2}},

	ResourceKnowledge: {Group: GroupAbstract, BaseCapacity: 500, SpoilageRate: 0.001, BaseProduction: 0.2, Consumption: DemographicRates{Child: 0.1, Adult: 0.05, Elder: 0.02}},
	ResourceCulture:   {Group: GroupAbstract, BaseCapacity: 500, SpoilageRate: 0.002, BaseProduction: 0.15, Consumption: DemographicRates{Child: 0.05, Adult: 0.08, Elder: 0.1}},
	ResourceFaith:     {Group: GroupAbstract, BaseCapacity: 500, SpoilageRate: 0.003, BaseProduction: 0.2, Consumption: DemographicRates{Child: 0.05, Adult: 0.1, Elder: 0.15}},
	ResourceInfluence: {Group: GroupAbstract, BaseCapacity: 300, SpoilageRate: 0.005, BaseProduction: 0.1, Consumption: DemographicRates{Child: 0, Adult: 0.05, Elder: 0.05}},
}

// AllResourceTypes returns every catalogued resource type. Order is not
// guaranteed; callers that need determinism sort.
func AllResourceTypes() []ResourceType {
	types := make([]ResourceType, 0, len(ResourceCatalog))
	for rt := range ResourceCatalog {
		types = append(types, rt)
	}
	return types
}

// IsValidResourceType reports whether rt is part of the closed enumeration.
func IsValidResourceType(rt ResourceType) bool {
	_, ok := ResourceCatalog[rt]
	return ok
}
