package resource

import (
	"github.com/aldermoor/villageforge/internal/domain"
)

// Service owns all functions over the village economic ledger. Every method
// is deterministic and pure: inputs are never mutated, results are returned
// as new values. Randomness lives in the event engine, not here.
type Service interface {
	InitializeResources(cfg domain.VillageConfig) domain.ResourceState
	UpdateResources(state domain.ResourceState, deltaHours float64) domain.ResourceState
	ValidateTransaction(tx domain.Transaction, state domain.ResourceState) domain.ValidationResult
	CalculateConsumption(pop domain.Population) domain.ResourceDemand
	ManageSeasonalEffects(state domain.ResourceState, season domain.Season, weather domain.Weather) domain.ResourceState
	ProcessProduction(village domain.Village) (domain.Village, []domain.ResourceUpdate)
	OptimizeResourceDistribution(village domain.Village) domain.OptimizationResult
	DetectResourceCrises(village domain.Village) []domain.ResourceCrisis
	ImplementEmergencyProtocols(crisis domain.ResourceCrisis, village domain.Village) domain.EmergencyResponse
	EvaluateTradeOpportunities(village domain.Village) []domain.TradeOpportunity
	ExecuteTrade(routeID string, village domain.Village) (domain.Village, domain.TradeResult, error)
	ApplyEffects(village domain.Village, effects domain.EventEffects) domain.Village
}

type service struct {
	now NowFunc
}

// NewService creates a new resource service. now is injected so tests can
// pin timestamps; pass nil for the wall clock.
func NewService(now NowFunc) Service {
	if now == nil {
		now = defaultNow
	}
	return &service{now: now}
}
