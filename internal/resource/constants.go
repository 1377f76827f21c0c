package resource

import "time"

// NowFunc supplies timestamps for ledger updates.
type NowFunc func() time.Time

func defaultNow() time.Time { return time.Now() }

// Initialization defaults.
const (
	// InitialQuality is the starting quality of every freshly stocked resource.
	InitialQuality = 75.0

	// CapacityPopulationReference scales base capacities: a village of this
	// population gets exactly the catalog's base capacity.
	CapacityPopulationReference = 100.0
)

// Validation thresholds.
const (
	// WarningHeadroomFactor: availability below amount*1.2 warns even when the
	// transaction is satisfiable.
	WarningHeadroomFactor = 1.2
)

// Survival-critical demand fractions.
const (
	UrgentFoodFraction  = 0.8
	UrgentWaterFraction = 0.9
)

// Luxury demand: per-head daily want for population above the threshold.
const (
	LuxuryPopulationThreshold = 50
	LuxuryWantPerHead         = 0.1
)

// Seasonal consumption surcharges, applied additively after production
// modifiers compose.
const (
	WinterWoodHeatingSurcharge = 0.5
	SummerWaterSurcharge       = 0.3
)

// Building efficiency.
const (
	// InputShortageFloor is the minimum multiplier a missing input can impose.
	InputShortageFloor = 0.1

	// WorkerEfficiencyScale normalizes worker efficiency scores to a multiplier.
	WorkerEfficiencyScale = 100.0
)

// Optimization thresholds.
const (
	UpgradeEfficiencyThreshold  = 0.8
	StorageUtilizationThreshold = 0.9
	ROIHorizonDays              = 30.0
	CriticalSupplyDays          = 3.0
)

// Crisis detection thresholds.
const (
	ShortageHorizonDays      = 7.0
	QualityCrisisThreshold   = 30.0
	QualityMajorThreshold    = 10.0
	OverflowUtilization      = 0.95
	OverflowMajorUtilization = 0.99
)

// Emergency response feasibility penalties.
const (
	FeasibilityPenaltyInsufficient = 50.0
	FeasibilityPenaltyTight        = 20.0
	MaxSuccessProbability          = 95.0
)

// Trade scoring: scarcity bonus bands by days of supply remaining.
const (
	ScarcityBandCriticalDays = 3.0
	ScarcityBandLowDays      = 7.0
	ScarcityBandModestDays   = 14.0

	ScarcityBonusCritical = 2.0
	ScarcityBonusLow      = 1.0
	ScarcityBonusModest   = 0.5
)

// Trade cost model.
const (
	// TransportCostPerDayFactor of export revenue per travel day.
	TransportCostPerDayFactor = 0.02

	// RiskCostFactor converts route risk (0-100) into a revenue fraction.
	RiskCostFactor = 0.005

	// ProductionCostFactor approximates the cost of producing exported goods
	// as a fraction of their sale revenue.
	ProductionCostFactor = 0.6
)
