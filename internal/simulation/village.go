package simulation

import (
	"context"
	"fmt"

	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
)

// starterBuildings seeds a founded village with the structures its
// surroundings support. Every village gets a farm and a well; the location
// adds one specialized producer.
var starterBuildings = map[string][]domain.Building{
	"plains": {farmBuilding(), wellBuilding()},
	"forest": {farmBuilding(), wellBuilding(), {
		Type:           "sawmill",
		Condition:      domain.ConditionGood,
		BaseEfficiency: 1.0,
		Produces:       []domain.BuildingOutput{{Resource: domain.ResourceLumber, DailyAmount: 6}},
		Consumes:       []domain.BuildingInput{{Resource: domain.ResourceWood, DailyNeed: 8, IsRequired: true}},
	}},
	"mountains": {farmBuilding(), wellBuilding(), {
		Type:           "quarry",
		Condition:      domain.ConditionGood,
		BaseEfficiency: 1.0,
		Produces:       []domain.BuildingOutput{{Resource: domain.ResourceStone, DailyAmount: 5}},
	}},
	"coast": {farmBuilding(), wellBuilding(), {
		Type:           "fishery",
		Condition:      domain.ConditionGood,
		BaseEfficiency: 1.0,
		Produces:       []domain.BuildingOutput{{Resource: domain.ResourceFood, DailyAmount: 6}},
	}},
	"river": {farmBuilding(), wellBuilding(), {
		Type:           "mill",
		Condition:      domain.ConditionGood,
		BaseEfficiency: 1.0,
		Produces:       []domain.BuildingOutput{{Resource: domain.ResourceFood, DailyAmount: 4}},
		Consumes:       []domain.BuildingInput{{Resource: domain.ResourceWater, DailyNeed: 3, IsRequired: false}},
	}},
}

func farmBuilding() domain.Building {
	return domain.Building{
		Type:           "farm",
		Condition:      domain.ConditionGood,
		BaseEfficiency: 1.0,
		Produces:       []domain.BuildingOutput{{Resource: domain.ResourceFood, DailyAmount: 8}},
		Consumes:       []domain.BuildingInput{{Resource: domain.ResourceWater, DailyNeed: 4, IsRequired: true}},
	}
}

func wellBuilding() domain.Building {
	return domain.Building{
		Type:           "well",
		Condition:      domain.ConditionGood,
		BaseEfficiency: 1.0,
		Produces:       []domain.BuildingOutput{{Resource: domain.ResourceWater, DailyAmount: 10}},
	}
}

// CreateVillage founds a village from cfg, seeds its resource ledger and
// starter buildings, schedules the current season's events and persists it.
func (s *service) CreateVillage(ctx context.Context, cfg domain.VillageConfig) (domain.Village, error) {
	if cfg.Name == "" {
		return domain.Village{}, fmt.Errorf("%w: village name is required", domain.ErrInvalidInput)
	}
	if cfg.Population.Total <= 0 {
		return domain.Village{}, fmt.Errorf("%w: population must be positive", domain.ErrInvalidInput)
	}

	now := s.now()
	village := domain.Village{
		ID:           s.newID(),
		Name:         cfg.Name,
		Location:     cfg.Location,
		Population:   cfg.Population,
		Happiness:    StartingHappiness,
		Stability:    StartingStability,
		Prosperity:   StartingProsperity,
		Defense:      StartingDefense,
		Resources:    s.resources.InitializeResources(cfg),
		Season:       seasonFor(now),
		Weather:      domain.Weather{Condition: "clear"},
		ActiveEvents: make(map[string]*domain.GameEvent),
		LastTick:     now,
		CreatedAt:    now,
	}

	buildings := starterBuildings[cfg.Location]
	if buildings == nil {
		buildings = []domain.Building{farmBuilding(), wellBuilding()}
	}
	for _, b := range buildings {
		b.ID = s.newID()
		village.Buildings = append(village.Buildings, b)
	}

	village.ScheduledEvents = s.events.ScheduleSeasonalEvents(ctx, village, village.Season)

	if err := s.store.SaveVillage(ctx, &village); err != nil {
		return domain.Village{}, err
	}
	if err := s.store.SaveScheduledEvents(ctx, village.ID, village.ScheduledEvents); err != nil {
		return domain.Village{}, err
	}

	logger.FromContext(ctx).Info(LogMsgVillageCreated,
		"village_id", village.ID,
		"name", village.Name,
		"location", village.Location,
		"population", village.Population.Total)
	return village, nil
}

func (s *service) GetVillage(ctx context.Context, villageID string) (domain.Village, error) {
	stored, err := s.store.GetVillage(ctx, villageID)
	if err != nil {
		return domain.Village{}, err
	}
	return *stored, nil
}

func (s *service) ListVillages(ctx context.Context) ([]string, error) {
	return s.store.ListVillageIDs(ctx)
}

func (s *service) DeleteVillage(ctx context.Context, villageID string) error {
	err := s.locks.WithLock(concurrency.VillageKey(villageID), func() error {
		return s.store.DeleteVillage(ctx, villageID)
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgVillageDeleted, "village_id", villageID)
	return nil
}

func (s *service) GetHistory(ctx context.Context, villageID string, limit int) ([]domain.HistoricalEvent, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.GetHistory(ctx, villageID, limit)
}

func (s *service) GetCrises(ctx context.Context, villageID string) ([]domain.ResourceCrisis, error) {
	village, err := s.GetVillage(ctx, villageID)
	if err != nil {
		return nil, err
	}
	return s.resources.DetectResourceCrises(village), nil
}

func (s *service) GetTradeOpportunities(ctx context.Context, villageID string) ([]domain.TradeOpportunity, error) {
	village, err := s.GetVillage(ctx, villageID)
	if err != nil {
		return nil, err
	}
	return s.resources.EvaluateTradeOpportunities(village), nil
}

func (s *service) OptimizeDistribution(ctx context.Context, villageID string) (domain.OptimizationResult, error) {
	village, err := s.GetVillage(ctx, villageID)
	if err != nil {
		return domain.OptimizationResult{}, err
	}
	return s.resources.OptimizeResourceDistribution(village), nil
}
