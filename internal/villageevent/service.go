// Package villageevent runs the village's stochastic event state machine:
// weighted generation, probability scoring, processing with chain reactions,
// player choice resolution and seasonal scheduling.
package villageevent

import (
	"context"
	"time"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/narrative"
	"github.com/aldermoor/villageforge/internal/utils"
)

// Service defines the interface for event engine operations
type Service interface {
	GenerateRandomEvents(ctx context.Context, village domain.Village) []domain.GameEvent
	CalculateEventProbability(eventType string, village domain.Village) float64
	ProcessEvent(ctx context.Context, ev *domain.GameEvent, village domain.Village) ProcessResult
	CreateEventChains(ctx context.Context, trigger *domain.GameEvent, village domain.Village) ([]domain.GameEvent, []domain.ScheduledEvent)
	HandlePlayerChoice(ctx context.Context, ev *domain.GameEvent, choiceID string, village domain.Village) (ProcessResult, error)
	ScheduleSeasonalEvents(ctx context.Context, village domain.Village, season domain.Season) []domain.ScheduledEvent
	MaterializeScheduled(ctx context.Context, sched domain.ScheduledEvent, village domain.Village) (domain.GameEvent, bool)
	CalculateCrisisLevel(activeEvents map[string]*domain.GameEvent) float64
}

// ProcessResult bundles everything one event resolution produces: the updated
// village, the outcome, the history record and any spawned follow-ups.
type ProcessResult struct {
	Village       domain.Village
	Outcome       domain.EventOutcome
	History       domain.HistoricalEvent
	ChainedEvents []domain.GameEvent
	Scheduled     []domain.ScheduledEvent
}

// EffectsApplier applies event effects and validates resource costs. The
// resource service satisfies it.
type EffectsApplier interface {
	ApplyEffects(village domain.Village, effects domain.EventEffects) domain.Village
	ValidateTransaction(tx domain.Transaction, state domain.ResourceState) domain.ValidationResult
}

type service struct {
	effects EffectsApplier
	gen     narrative.Generator
	rnd     func() float64
	now     NowFunc
	newID   func() string
}

// NewService creates a new event engine. gen may be nil, in which case every
// description comes from the deterministic fallback templates. rnd may be nil
// to use the default random source.
func NewService(effects EffectsApplier, gen narrative.Generator, rnd func() float64, now NowFunc) Service {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		effects: effects,
		gen:     gen,
		rnd:     rnd,
		now:     now,
		newID:   newEventID,
	}
}
