package villageevent

import "time"

// NowFunc supplies timestamps for event creation and scheduling.
type NowFunc func() time.Time

const (
	// Per-tick event generation.
	BaseTickEventChance = 0.15 // before size and state adjustments
	MaxTickEventChance  = 0.80

	// Size multipliers on the per-tick chance.
	SizeMultiplierHamlet  = 0.8
	SizeMultiplierVillage = 1.0
	SizeMultiplierTown    = 1.2
	SizeMultiplierCity    = 1.4

	// Village-state adjustments on the per-tick chance. Low stability breeds
	// trouble; contentment quiets things down.
	LowStabilityThreshold  = 40.0
	LowStabilitySurcharge  = 0.10
	HighHappinessThreshold = 75.0
	HighHappinessDiscount  = 0.05

	// Per-type probability.
	BaseEventProbability = 10.0 // percent
	MinEventProbability  = 1.0
	MaxEventProbability  = 95.0

	// Graceful degradation penalty when processing fails.
	FailureHappinessPenalty = -5.0
	FailureStabilityPenalty = -2.0

	// Critical successes land harder.
	CriticalEffectMultiplier = 1.5

	// Crisis level severity weights.
	CrisisWeightCatastrophic = 40.0
	CrisisWeightMajor        = 25.0
	CrisisWeightModerate     = 10.0
	CrisisWeightMinor        = 2.0
	CrisisWeightBeneficial   = -5.0

	// Narrative generation budget per call.
	NarrativeTimeout = 5 * time.Second
)

// Outcome result labels.
const (
	ResultResolved        = "resolved"
	ResultSuccess         = "success"
	ResultCriticalSuccess = "critical_success"
	ResultFailure         = "failure"
)
