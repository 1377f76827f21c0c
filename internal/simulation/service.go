// Package simulation coordinates one village tick end to end: economy update,
// event generation and resolution, crisis detection, persistence and bus
// notifications. It owns the single-writer discipline per village.
package simulation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/event"
	"github.com/aldermoor/villageforge/internal/repository"
	"github.com/aldermoor/villageforge/internal/resource"
	"github.com/aldermoor/villageforge/internal/villageevent"
)

// Service defines the interface for simulation coordination
type Service interface {
	CreateVillage(ctx context.Context, cfg domain.VillageConfig) (domain.Village, error)
	GetVillage(ctx context.Context, villageID string) (domain.Village, error)
	ListVillages(ctx context.Context) ([]string, error)
	DeleteVillage(ctx context.Context, villageID string) error

	Tick(ctx context.Context, villageID string, deltaHours float64) (TickResult, error)
	SubmitAction(ctx context.Context, villageID string, action Action) (ActionResult, error)

	GetHistory(ctx context.Context, villageID string, limit int) ([]domain.HistoricalEvent, error)
	GetCrises(ctx context.Context, villageID string) ([]domain.ResourceCrisis, error)
	GetTradeOpportunities(ctx context.Context, villageID string) ([]domain.TradeOpportunity, error)
	OptimizeDistribution(ctx context.Context, villageID string) (domain.OptimizationResult, error)
}

// TickResult summarizes everything one tick changed.
type TickResult struct {
	Village     domain.Village          `json:"village"`
	Updates     []domain.ResourceUpdate `json:"updates,omitempty"`
	Generated   []domain.GameEvent      `json:"generated,omitempty"`
	Outcomes    []domain.EventOutcome   `json:"outcomes,omitempty"`
	Crises      []domain.ResourceCrisis `json:"crises,omitempty"`
	CrisisLevel float64                 `json:"crisis_level"`
}

type service struct {
	store     repository.Store
	resources resource.Service
	events    villageevent.Service
	locks     *concurrency.LockManager
	bus       event.Bus
	now       func() time.Time
	newID     func() string
}

// NewService creates a new simulation coordinator. bus may be nil when no
// subscriber cares about tick notifications; now is injected so tests can pin
// the clock, pass nil for the wall clock.
func NewService(store repository.Store, resources resource.Service, events villageevent.Service, locks *concurrency.LockManager, bus event.Bus, now func() time.Time) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		store:     store,
		resources: resources,
		events:    events,
		locks:     locks,
		bus:       bus,
		now:       now,
		newID:     uuid.NewString,
	}
}

// publish sends a bus event when a bus is wired, swallowing nothing: the
// resilient publisher already absorbs transient failures.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(ctx, evt)
}

// seasonFor maps a calendar month onto the simulation season.
func seasonFor(t time.Time) domain.Season {
	switch t.Month() {
	case time.December, time.January, time.February:
		return domain.SeasonWinter
	case time.March, time.April, time.May:
		return domain.SeasonSpring
	case time.June, time.July, time.August:
		return domain.SeasonSummer
	default:
		return domain.SeasonAutumn
	}
}
