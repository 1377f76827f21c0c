package domain

import (
	"encoding/json"
	"math"
)

// CrisisType classifies a detected resource condition.
type CrisisType string

const (
	CrisisShortage        CrisisType = "shortage"
	CrisisQualityDegraded CrisisType = "quality_degradation"
	CrisisStorageOverflow CrisisType = "storage_overflow"
)

// CrisisImpact estimates the knock-on damage of an unaddressed crisis.
type CrisisImpact struct {
	Happiness          float64 `json:"happiness"`
	Health             float64 `json:"health"`
	Economy            float64 `json:"economy"`
	BuildingEfficiency float64 `json:"building_efficiency"`
}

// ResourceCrisis is a detected condition derived from current stock and flow.
// Crises are a view over ResourceState, recomputed each tick, never persisted.
type ResourceCrisis struct {
	Type               CrisisType    `json:"type"`
	Resource           ResourceType  `json:"resource"`
	Severity           EventSeverity `json:"severity"`
	DaysUntilDepletion float64       `json:"days_until_depletion"` // +Inf when consumption is zero
	Urgency            float64       `json:"urgency"`              // 0-100
	Impact             CrisisImpact  `json:"impact"`
	SuggestedActions   []string      `json:"suggested_actions"`
}

// Depleting reports whether the crisis has a finite depletion horizon.
func (c ResourceCrisis) Depleting() bool {
	return !math.IsInf(c.DaysUntilDepletion, 1)
}

// MarshalJSON emits a null horizon for crises that never deplete. JSON has
// no encoding for an infinite float, so the in-memory sentinel cannot cross
// the wire as-is.
func (c ResourceCrisis) MarshalJSON() ([]byte, error) {
	type alias ResourceCrisis
	wire := struct {
		alias
		DaysUntilDepletion *float64 `json:"days_until_depletion"`
	}{alias: alias(c)}
	if c.Depleting() {
		wire.DaysUntilDepletion = &c.DaysUntilDepletion
	}
	return json.Marshal(wire)
}

// EmergencyAction is one mitigation step of an emergency response.
type EmergencyAction struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Effectiveness      float64           `json:"effectiveness"` // 0-100 as stated
	Feasibility        float64           `json:"feasibility"`   // 0-100 after penalties
	ResourceCost       []TransactionCost `json:"resource_cost,omitempty"`
	ImplementationDays int               `json:"implementation_days"`
}

// EmergencyOutcome summarizes what the response is expected to achieve.
type EmergencyOutcome struct {
	SuccessProbability float64 `json:"success_probability"` // capped at 95
	Description        string  `json:"description"`
}

// EmergencyResponse is a feasibility-weighted bundle of mitigation actions
// generated for one crisis.
type EmergencyResponse struct {
	Crisis                 ResourceCrisis    `json:"crisis"`
	Actions                []EmergencyAction `json:"actions"`
	EstimatedEffectiveness float64           `json:"estimated_effectiveness"`
	ImplementationDays     int               `json:"implementation_days"` // max over actions
	ExpectedOutcome        EmergencyOutcome  `json:"expected_outcome"`
}

// OptimizationPriority orders distribution recommendations.
type OptimizationPriority string

const (
	PriorityLow      OptimizationPriority = "low"
	PriorityMedium   OptimizationPriority = "medium"
	PriorityHigh     OptimizationPriority = "high"
	PriorityCritical OptimizationPriority = "critical"
)

// OptimizationRecommendation is one suggested improvement.
type OptimizationRecommendation struct {
	Target             string            `json:"target"` // building ID or "storage"
	Action             string            `json:"action"`
	Reason             string            `json:"reason"`
	ImplementationCost []TransactionCost `json:"implementation_cost"`
	PotentialSavings   float64           `json:"potential_savings"` // gold-equivalent per month
}

// OptimizationResult aggregates distribution recommendations with ROI.
type OptimizationResult struct {
	Recommendations []OptimizationRecommendation `json:"recommendations"`
	TotalCost       float64                      `json:"total_cost"`
	ExpectedROI     float64                      `json:"expected_roi"`
	Priority        OptimizationPriority         `json:"priority"`
}
