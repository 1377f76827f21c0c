package domain

import "time"

// ResourceType identifies one kind of village resource. The set is closed:
// every type is enumerated below and described in the resource catalog.
type ResourceType string

const (
	// Survival
	ResourceFood  ResourceType = "food"
	ResourceWater ResourceType = "water"

	// Raw materials
	ResourceWood  ResourceType = "wood"
	ResourceStone ResourceType = "stone"
	ResourceIron  ResourceType = "iron"

	// Processed goods
	ResourceLumber  ResourceType = "lumber"
	ResourceTools   ResourceType = "tools"
	ResourceWeapons ResourceType = "weapons"
	ResourceCloth   ResourceType = "cloth"
	ResourcePottery ResourceType = "pottery"
	ResourceBooks   ResourceType = "books"

	// Luxuries
	ResourceSpices  ResourceType = "spices"
	ResourceJewelry ResourceType = "jewelry"
	ResourceArt     ResourceType = "art"
	ResourceWine    ResourceType = "wine"
	ResourceSilk    ResourceType = "silk"

	// Currency
	ResourceGold ResourceType = "gold"

	// Abstract
	ResourceKnowledge ResourceType = "knowledge"
	ResourceCulture   ResourceType = "culture"
	ResourceFaith     ResourceType = "faith"
	ResourceInfluence ResourceType = "influence"
)

// ResourceGroup categorizes resource types for demand and trade scoring.
type ResourceGroup string

const (
	GroupSurvival  ResourceGroup = "survival"
	GroupRaw       ResourceGroup = "raw"
	GroupProcessed ResourceGroup = "processed"
	GroupLuxury    ResourceGroup = "luxury"
	GroupCurrency  ResourceGroup = "currency"
	GroupAbstract  ResourceGroup = "abstract"
)

// ResourceStock is the quantity, capacity, quality and decay behavior of one
// resource type in one village.
// Invariants: 0 <= Current <= Maximum, Reserved <= Current, Quality in [0,100].
type ResourceStock struct {
	Current      float64   `json:"current"`
	Maximum      float64   `json:"maximum"`
	Reserved     float64   `json:"reserved"`
	Quality      float64   `json:"quality"`
	SpoilageRate float64   `json:"spoilage_rate"` // signed daily fraction; negative appreciates (wine)
	LastUpdated  time.Time `json:"last_updated"`
}

// Available returns the unreserved portion of the stock.
func (s ResourceStock) Available() float64 {
	return s.Current - s.Reserved
}

// FreeCapacity returns the remaining storage headroom.
func (s ResourceStock) FreeCapacity() float64 {
	return s.Maximum - s.Current
}

// ResourceState is the per-village economic ledger: one stock per resource
// type plus derived capacity sums and daily flow maps.
type ResourceState struct {
	Stocks           map[ResourceType]ResourceStock `json:"stocks"`
	TotalCapacity    float64                        `json:"total_capacity"`
	UsedCapacity     float64                        `json:"used_capacity"`
	DailyProduction  map[ResourceType]float64       `json:"daily_production"`
	DailyConsumption map[ResourceType]float64       `json:"daily_consumption"`
	NetFlow          map[ResourceType]float64       `json:"net_flow"`
	Efficiency       map[ResourceType]float64       `json:"efficiency"` // 0-1 production multiplier
}

// Clone returns a deep copy. Update functions operate on copies so callers
// never observe partially-applied state.
func (rs ResourceState) Clone() ResourceState {
	out := ResourceState{
		Stocks:           make(map[ResourceType]ResourceStock, len(rs.Stocks)),
		TotalCapacity:    rs.TotalCapacity,
		UsedCapacity:     rs.UsedCapacity,
		DailyProduction:  make(map[ResourceType]float64, len(rs.DailyProduction)),
		DailyConsumption: make(map[ResourceType]float64, len(rs.DailyConsumption)),
		NetFlow:          make(map[ResourceType]float64, len(rs.NetFlow)),
		Efficiency:       make(map[ResourceType]float64, len(rs.Efficiency)),
	}
	for k, v := range rs.Stocks {
		out.Stocks[k] = v
	}
	for k, v := range rs.DailyProduction {
		out.DailyProduction[k] = v
	}
	for k, v := range rs.DailyConsumption {
		out.DailyConsumption[k] = v
	}
	for k, v := range rs.NetFlow {
		out.NetFlow[k] = v
	}
	for k, v := range rs.Efficiency {
		out.Efficiency[k] = v
	}
	return out
}

// TransactionType distinguishes the intent behind a resource movement.
type TransactionType string

const (
	TransactionProduction   TransactionType = "production"
	TransactionConsumption  TransactionType = "consumption"
	TransactionTrade        TransactionType = "trade"
	TransactionConstruction TransactionType = "construction"
	TransactionEmergency    TransactionType = "emergency"
)

// TransactionCost is one cost line of a transaction. Quality, when set,
// requires the stock to meet at least that quality.
type TransactionCost struct {
	Resource ResourceType `json:"resource"`
	Amount   float64      `json:"amount"`
	Quality  *float64     `json:"quality,omitempty"`
}

// Transaction is an atomic intended resource movement. Transactions are
// validated before commit; validation never mutates state.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Costs       []TransactionCost `json:"costs"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ValidationResult carries structured validation output. Failures are data,
// not errors: nothing is thrown and nothing is partially applied.
type ValidationResult struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// ResourceDemand is a read-only projection of population onto consumption.
// Recomputed on demand, never persisted.
type ResourceDemand struct {
	TotalDemand     map[ResourceType]float64 `json:"total_demand"`
	UrgentNeeds     map[ResourceType]float64 `json:"urgent_needs"`
	LuxuryWants     map[ResourceType]float64 `json:"luxury_wants"`
	ProjectedGrowth map[ResourceType]float64 `json:"projected_growth"`
}

// ResourceUpdate records one applied stock change with its cause.
type ResourceUpdate struct {
	Resource ResourceType `json:"resource"`
	Previous float64      `json:"previous"`
	New      float64      `json:"new"`
	Change   float64      `json:"change"`
	Reason   string       `json:"reason"`
}
