package villageevent

import (
	"context"
	"fmt"
	"strings"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
)

// HandlePlayerChoice resolves one player choice on an active event. Costs are
// validated with transaction semantics before anything is applied; a failed
// validation returns a penalty outcome, not an error. The success roll picks
// the critical band first, then success, then failure. Critical successes
// scale the success effects up and use the critical narrative.
func (s *service) HandlePlayerChoice(ctx context.Context, ev *domain.GameEvent, choiceID string, village domain.Village) (ProcessResult, error) {
	log := logger.FromContext(ctx)

	if ev == nil {
		return ProcessResult{}, domain.ErrEventNotFound
	}
	if !ev.IsActive {
		return ProcessResult{}, domain.ErrEventNotActive
	}
	if ev.IsResolved {
		return ProcessResult{}, domain.ErrEventAlreadyResolved
	}

	choice, ok := findChoice(ev.PlayerChoices, choiceID)
	if !ok {
		return ProcessResult{}, fmt.Errorf("%w: %s", domain.ErrChoiceNotFound, choiceID)
	}

	if result := s.validateChoice(choice, village); !result.IsValid {
		log.Info("choice requirements unmet",
			"village_id", village.ID,
			"event_id", ev.ID,
			"choice_id", choiceID,
			"errors", strings.Join(result.Errors, "; "))
		return s.degrade(ev, village, "The plan falls apart before it begins."), nil
	}

	// Deduct the cost, then roll.
	out := village
	if len(choice.ResourceCost) > 0 {
		spend := domain.EventEffects{Resources: make(map[domain.ResourceType]float64, len(choice.ResourceCost))}
		for _, cost := range choice.ResourceCost {
			spend.Resources[cost.Resource] -= cost.Amount
		}
		out = s.effects.ApplyEffects(out, spend)
	}

	roll := s.rnd() * 100
	var result string
	var outcomeEffects domain.EventEffects
	var narrativeLine string
	switch {
	case roll < choice.CriticalSuccessChance:
		result = ResultCriticalSuccess
		outcomeEffects = choice.CriticalSuccess.Effects.Scale(CriticalEffectMultiplier)
		narrativeLine = choice.CriticalSuccess.Narrative
	case roll < choice.SuccessChance:
		result = ResultSuccess
		outcomeEffects = choice.Success.Effects
		narrativeLine = choice.Success.Narrative
	default:
		result = ResultFailure
		outcomeEffects = choice.Failure.Effects
		narrativeLine = choice.Failure.Narrative
	}

	out = s.effects.ApplyEffects(out, outcomeEffects)

	// Choice-referenced chains trigger after the outcome lands.
	chainTrigger := &domain.GameEvent{
		ID:   ev.ID,
		Type: ev.Type,
	}
	for _, eventType := range choice.ChainEventTypes {
		chainTrigger.ChainReactions = append(chainTrigger.ChainReactions, domain.ChainReaction{
			EventType:   eventType,
			Probability: 1,
		})
	}
	chained, scheduled := s.CreateEventChains(ctx, chainTrigger, out)
	for _, c := range chained {
		ev.ChildEventIDs = append(ev.ChildEventIDs, c.ID)
	}
	out.ScheduledEvents = append(out.ScheduledEvents, scheduled...)

	ev.IsActive = false
	ev.IsResolved = true
	ev.ResolvedAt = s.now()

	active := make(map[string]*domain.GameEvent, len(out.ActiveEvents))
	for id, e := range out.ActiveEvents {
		if id != ev.ID {
			active[id] = e
		}
	}
	out.ActiveEvents = active

	outcome := domain.EventOutcome{
		EventID:   ev.ID,
		ChoiceID:  choice.ID,
		Result:    result,
		Effects:   outcomeEffects,
		Narrative: narrativeLine,
	}
	for _, c := range chained {
		outcome.ChainedIDs = append(outcome.ChainedIDs, c.ID)
	}

	history := domain.HistoricalEvent{
		EventID:         ev.ID,
		Type:            ev.Type,
		Category:        ev.Category,
		Severity:        ev.Severity,
		Title:           ev.Title,
		Outcome:         result,
		ShortTermImpact: shortTermImpact(outcomeEffects),
		LongTermImpact:  longTermImpact(ev.Severity, len(chained)+len(scheduled)),
		ResolvedAt:      ev.ResolvedAt,
	}

	log.Info("player choice resolved",
		"village_id", village.ID,
		"event_id", ev.ID,
		"choice_id", choice.ID,
		"result", result)

	return ProcessResult{
		Village:       out,
		Outcome:       outcome,
		History:       history,
		ChainedEvents: chained,
		Scheduled:     scheduled,
	}, nil
}

func findChoice(choices []domain.PlayerChoice, choiceID string) (domain.PlayerChoice, bool) {
	for _, c := range choices {
		if c.ID == choiceID {
			return c, true
		}
	}
	return domain.PlayerChoice{}, false
}

// validateChoice checks requirements (must be held, not spent) and the
// resource cost through the shared transaction validator.
func (s *service) validateChoice(choice domain.PlayerChoice, village domain.Village) domain.ValidationResult {
	costs := make([]domain.TransactionCost, 0, len(choice.Requirements)+len(choice.ResourceCost))
	costs = append(costs, choice.Requirements...)
	costs = append(costs, choice.ResourceCost...)
	if len(costs) == 0 {
		return domain.ValidationResult{IsValid: true}
	}

	tx := domain.Transaction{
		Type:        domain.TransactionConsumption,
		Costs:       costs,
		Description: fmt.Sprintf("choice %s", choice.ID),
	}
	return s.effects.ValidateTransaction(tx, village.Resources)
}
