package simulation

import (
	"context"
	"fmt"

	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/event"
	"github.com/aldermoor/villageforge/internal/logger"
)

// Action types accepted by SubmitAction.
const (
	ActionTrade         = "trade"
	ActionChoice        = "choice"
	ActionBuild         = "build"
	ActionAssignWorkers = "assign_workers"
)

// Action is one player-issued command against a village.
type Action struct {
	Type string `json:"type"`

	// trade
	RouteID string `json:"route_id,omitempty"`

	// choice
	EventID  string `json:"event_id,omitempty"`
	ChoiceID string `json:"choice_id,omitempty"`

	// build
	Building *domain.Building         `json:"building,omitempty"`
	Costs    []domain.TransactionCost `json:"costs,omitempty"`

	// assign_workers
	BuildingID string          `json:"building_id,omitempty"`
	Workers    []domain.Worker `json:"workers,omitempty"`
}

// ActionResult carries whatever the action produced. Only the fields
// matching the action type are set.
type ActionResult struct {
	Village    domain.Village           `json:"village"`
	Trade      *domain.TradeResult      `json:"trade,omitempty"`
	Outcome    *domain.EventOutcome     `json:"outcome,omitempty"`
	Validation *domain.ValidationResult `json:"validation,omitempty"`
}

// SubmitAction applies one player action under the village's writer lock.
// Validation failures for build actions come back as data in
// ActionResult.Validation with no error and nothing applied.
func (s *service) SubmitAction(ctx context.Context, villageID string, action Action) (ActionResult, error) {
	if villageID == "" {
		return ActionResult{}, fmt.Errorf("%w: village id is required", domain.ErrInvalidInput)
	}

	var result ActionResult
	err := s.locks.WithLock(concurrency.VillageKey(villageID), func() error {
		stored, err := s.store.GetVillage(ctx, villageID)
		if err != nil {
			return err
		}
		village := *stored

		switch action.Type {
		case ActionTrade:
			village, result, err = s.executeTrade(ctx, village, action)
		case ActionChoice:
			village, result, err = s.resolveChoice(ctx, village, action)
		case ActionBuild:
			village, result, err = s.build(village, action)
		case ActionAssignWorkers:
			village, result, err = s.assignWorkers(village, action)
		default:
			return fmt.Errorf("%w: %q", domain.ErrUnknownAction, action.Type)
		}
		if err != nil {
			return err
		}

		if err := s.store.SaveVillage(ctx, &village); err != nil {
			return err
		}
		if err := s.store.SaveScheduledEvents(ctx, villageID, village.ScheduledEvents); err != nil {
			return err
		}
		result.Village = village
		return nil
	})
	if err != nil {
		return ActionResult{}, err
	}

	logger.FromContext(ctx).Info(LogMsgActionSubmitted,
		"village_id", villageID,
		"action", action.Type)
	return result, nil
}

func (s *service) executeTrade(ctx context.Context, village domain.Village, action Action) (domain.Village, ActionResult, error) {
	updated, tradeResult, err := s.resources.ExecuteTrade(action.RouteID, village)
	if err != nil {
		return village, ActionResult{}, err
	}
	s.publish(ctx, event.NewTradeExecutedEvent(village.ID, tradeResult))
	return updated, ActionResult{Trade: &tradeResult}, nil
}

func (s *service) resolveChoice(ctx context.Context, village domain.Village, action Action) (domain.Village, ActionResult, error) {
	ev, ok := village.ActiveEvents[action.EventID]
	if !ok {
		return village, ActionResult{}, fmt.Errorf("%w: %s", domain.ErrEventNotFound, action.EventID)
	}

	res, err := s.events.HandlePlayerChoice(ctx, ev, action.ChoiceID, village)
	if err != nil {
		return village, ActionResult{}, err
	}
	village = res.Village
	village.ScheduledEvents = append(village.ScheduledEvents, res.Scheduled...)

	// Chained children without choices resolve immediately; the rest wait in
	// the active set.
	village, chained := s.settle(ctx, village, res.ChainedEvents)
	for _, r := range chained {
		s.publish(ctx, event.NewEventResolvedEvent(village.ID, r.outcome, r.ev))
	}

	if err := s.store.AppendHistory(ctx, village.ID, res.History); err != nil {
		logger.FromContext(ctx).Error("failed to append event history",
			"village_id", village.ID,
			"event_id", action.EventID,
			"error", err)
	}
	s.publish(ctx, event.NewEventResolvedEvent(village.ID, res.Outcome, *ev))

	return village, ActionResult{Outcome: &res.Outcome}, nil
}

func (s *service) build(village domain.Village, action Action) (domain.Village, ActionResult, error) {
	if action.Building == nil {
		return village, ActionResult{}, fmt.Errorf("%w: building is required", domain.ErrInvalidInput)
	}

	tx := domain.Transaction{
		ID:          s.newID(),
		Type:        domain.TransactionConstruction,
		Costs:       action.Costs,
		Description: "construct " + action.Building.Type,
		CreatedAt:   s.now(),
	}
	validation := s.resources.ValidateTransaction(tx, village.Resources)
	if !validation.IsValid {
		return village, ActionResult{Validation: &validation}, nil
	}

	if len(action.Costs) > 0 {
		deltas := make(map[domain.ResourceType]float64, len(action.Costs))
		for _, cost := range action.Costs {
			deltas[cost.Resource] -= cost.Amount
		}
		village = s.resources.ApplyEffects(village, domain.EventEffects{Resources: deltas})
	}

	building := *action.Building
	if building.ID == "" {
		building.ID = s.newID()
	}
	if building.Condition == "" {
		building.Condition = domain.ConditionPerfect
	}
	village.Buildings = append(append([]domain.Building{}, village.Buildings...), building)

	return village, ActionResult{Validation: &validation}, nil
}

func (s *service) assignWorkers(village domain.Village, action Action) (domain.Village, ActionResult, error) {
	buildings := append([]domain.Building{}, village.Buildings...)
	for i := range buildings {
		if buildings[i].ID == action.BuildingID {
			buildings[i].Workers = action.Workers
			village.Buildings = buildings
			return village, ActionResult{}, nil
		}
	}
	return village, ActionResult{}, fmt.Errorf("%w: building %s not found", domain.ErrInvalidInput, action.BuildingID)
}
