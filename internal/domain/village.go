package domain

import "time"

// Season of the simulation year.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// WeatherEffect is one active weather modifier. Only "production" effects
// touch the economy; other types pass through untouched.
type WeatherEffect struct {
	Type     string  `json:"type"`
	Modifier float64 `json:"modifier"`
}

// Weather is the current weather over a village.
type Weather struct {
	Condition string          `json:"condition"` // "clear", "rain", "storm", "drought", "snow"
	Effects   []WeatherEffect `json:"effects"`
}

// SizeClass buckets villages by population for event frequency scaling.
type SizeClass string

const (
	SizeHamlet  SizeClass = "hamlet"
	SizeVillage SizeClass = "village"
	SizeTown    SizeClass = "town"
	SizeCity    SizeClass = "city"
)

// Population is the demographic breakdown used for consumption modeling.
// BirthRate/DeathRate are per-1000-per-year rates.
type Population struct {
	Total     int     `json:"total"`
	Children  int     `json:"children"`
	Adults    int     `json:"adults"`
	Elderly   int     `json:"elderly"`
	BirthRate float64 `json:"birth_rate"`
	DeathRate float64 `json:"death_rate"`
}

// BuildingCondition grades the physical state of a building.
type BuildingCondition string

const (
	ConditionPerfect  BuildingCondition = "perfect"
	ConditionGood     BuildingCondition = "good"
	ConditionWorn     BuildingCondition = "worn"
	ConditionDamaged  BuildingCondition = "damaged"
	ConditionCritical BuildingCondition = "critical"
	ConditionRuins    BuildingCondition = "ruins"
)

// BuildingInput is one consumed resource of a production building. Required
// inputs gate production entirely; optional inputs only scale efficiency.
type BuildingInput struct {
	Resource   ResourceType `json:"resource"`
	DailyNeed  float64      `json:"daily_need"`
	IsRequired bool         `json:"is_required"`
}

// BuildingOutput is one produced resource of a building.
type BuildingOutput struct {
	Resource    ResourceType `json:"resource"`
	DailyAmount float64      `json:"daily_amount"`
}

// Worker is one assigned laborer with an efficiency score in [0,100].
type Worker struct {
	ID         string  `json:"id"`
	Efficiency float64 `json:"efficiency"`
}

// Building is a production (or storage) structure in a village.
type Building struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Condition      BuildingCondition `json:"condition"`
	BaseEfficiency float64           `json:"base_efficiency"` // 0-1
	Produces       []BuildingOutput  `json:"produces"`
	Consumes       []BuildingInput   `json:"consumes"`
	Workers        []Worker          `json:"workers"`
}

// Deposit is a natural resource deposit tapped through its extraction
// building. CurrentYield only ever decreases.
type Deposit struct {
	ID                 string       `json:"id"`
	Resource           ResourceType `json:"resource"`
	CurrentYield       float64      `json:"current_yield"`       // units per extraction
	DepletionRate      float64      `json:"depletion_rate"`      // fraction of yield lost per extraction
	ExtractionBuilding string       `json:"extraction_building"` // building type that taps it
}

// Village is the aggregate the simulation ticks: demographics, economy,
// structures and the event state machine's working set.
type Village struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"` // "plains", "forest", "mountains", "coast", "river"
	Population Population `json:"population"`

	// Percentage aggregates, clamped to [0,100].
	Happiness  float64 `json:"happiness"`
	Stability  float64 `json:"stability"`
	Prosperity float64 `json:"prosperity"`
	Defense    float64 `json:"defense"`

	Resources   ResourceState `json:"resources"`
	Buildings   []Building    `json:"buildings"`
	Deposits    []Deposit     `json:"deposits"`
	TradeRoutes []TradeRoute  `json:"trade_routes"`

	Season  Season  `json:"season"`
	Weather Weather `json:"weather"`

	ActiveEvents    map[string]*GameEvent `json:"active_events"`
	ScheduledEvents []ScheduledEvent      `json:"scheduled_events"`

	LastTick  time.Time `json:"last_tick"`
	CreatedAt time.Time `json:"created_at"`
}

// Size buckets the village by total population.
func (v *Village) Size() SizeClass {
	switch {
	case v.Population.Total < 50:
		return SizeHamlet
	case v.Population.Total < 200:
		return SizeVillage
	case v.Population.Total < 1000:
		return SizeTown
	default:
		return SizeCity
	}
}

// Treasury returns the village's current gold stock.
func (v *Village) Treasury() float64 {
	return v.Resources.Stocks[ResourceGold].Current
}

// ClampPercent clamps a percentage aggregate to [0,100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// VillageConfig seeds a new village's economy.
type VillageConfig struct {
	Name            string                   `json:"name"`
	Location        string                   `json:"location"`
	Population      Population               `json:"population"`
	StartingAmounts map[ResourceType]float64 `json:"starting_amounts"`
}
