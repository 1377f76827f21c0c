package domain

import "time"

// TradeDirection distinguishes goods flowing out of or into the village.
type TradeDirection string

const (
	TradeExport TradeDirection = "export"
	TradeImport TradeDirection = "import"
)

// TradeGood is one line of a trade route's manifest.
type TradeGood struct {
	Resource  ResourceType   `json:"resource"`
	Direction TradeDirection `json:"direction"`
	Quantity  float64        `json:"quantity"`
	UnitPrice float64        `json:"unit_price"` // gold per unit
}

// TradeRoute is persisted per-village trade configuration.
type TradeRoute struct {
	ID              string      `json:"id"`
	Destination     string      `json:"destination"`
	Goods           []TradeGood `json:"goods"`
	TravelDays      int         `json:"travel_days"`
	RiskLevel       float64     `json:"risk_level"` // 0-100
	RouteCost       float64     `json:"route_cost"` // flat gold cost per trade
	IsActive        bool        `json:"is_active"`
	LastTrade       time.Time   `json:"last_trade,omitempty"`
	TradesThisMonth int         `json:"trades_this_month"`
}

// TradeOpportunity scores one route for the current village state.
type TradeOpportunity struct {
	RouteID       string  `json:"route_id"`
	Destination   string  `json:"destination"`
	ExportProfit  float64 `json:"export_profit"`
	ImportBenefit float64 `json:"import_benefit"`
	TotalProfit   float64 `json:"total_profit"`
	Risk          float64 `json:"risk"`
	Score         float64 `json:"score"` // profit / (1 + risk/100)
}

// TradeResult reports an executed trade. ActualImport below the manifest
// quantity means capacity overflow was discarded.
type TradeResult struct {
	RouteID   string           `json:"route_id"`
	Success   bool             `json:"success"`
	Updates   []ResourceUpdate `json:"updates,omitempty"`
	NetProfit float64          `json:"net_profit"`
	Reason    string           `json:"reason,omitempty"`
}
