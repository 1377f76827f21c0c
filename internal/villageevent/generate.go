package villageevent

import (
	"context"

	"github.com/google/uuid"

	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/narrative"
	"github.com/aldermoor/villageforge/internal/utils"
)

func newEventID() string {
	return uuid.NewString()
}

// sizeMultiplier scales the per-tick event chance by settlement size. Bigger
// places attract more trouble and more fortune.
func sizeMultiplier(size domain.SizeClass) float64 {
	switch size {
	case domain.SizeHamlet:
		return SizeMultiplierHamlet
	case domain.SizeTown:
		return SizeMultiplierTown
	case domain.SizeCity:
		return SizeMultiplierCity
	default:
		return SizeMultiplierVillage
	}
}

// tickEventChance computes the probability that any event fires this tick.
func tickEventChance(village domain.Village) float64 {
	chance := BaseTickEventChance * sizeMultiplier(village.Size())
	if village.Stability < LowStabilityThreshold {
		chance += LowStabilitySurcharge
	}
	if village.Happiness > HighHappinessThreshold {
		chance -= HighHappinessDiscount
	}
	return utils.Clamp(chance, 0, MaxTickEventChance)
}

// categoryWeights adjusts the base category weights for the village's season
// and state. Weights never go below zero.
func categoryWeights(village domain.Village) map[domain.EventCategory]float64 {
	weights := make(map[domain.EventCategory]float64, len(categoryBaseWeights))
	for cat, w := range categoryBaseWeights {
		weights[cat] = w
	}

	switch village.Season {
	case domain.SeasonWinter:
		weights[domain.CategoryNatural] += 10
		weights[domain.CategorySocial] -= 5
	case domain.SeasonSummer:
		weights[domain.CategorySocial] += 10
		weights[domain.CategoryEconomic] += 5
	}

	if village.Population.Total > 500 {
		weights[domain.CategorySocial] += 10
	}
	if village.Prosperity > 70 {
		weights[domain.CategoryEconomic] += 10
	}
	if village.Stability < LowStabilityThreshold {
		weights[domain.CategoryCrisis] += 15
	}

	for cat, w := range weights {
		if w < 0 {
			weights[cat] = 0
		}
	}
	return weights
}

// GenerateRandomEvents rolls whether an event fires this tick, then picks a
// category by weighted selection, a concrete type within it, and materializes
// the event. Narrative generation is best-effort; the template fallback text
// guarantees an event is produced once the tick roll fires.
func (s *service) GenerateRandomEvents(ctx context.Context, village domain.Village) []domain.GameEvent {
	log := logger.FromContext(ctx)

	chance := tickEventChance(village)
	if s.rnd() >= chance {
		return nil
	}

	weights := categoryWeights(village)
	ordered := make([]float64, len(orderedCategories))
	for i, cat := range orderedCategories {
		ordered[i] = weights[cat]
	}
	idx := utils.WeightedPick(ordered, s.rnd())
	if idx < 0 {
		return nil
	}
	category := orderedCategories[idx]

	templates := templatesByCategory[category]
	if len(templates) == 0 {
		return nil
	}
	tmpl := templates[int(s.rnd()*float64(len(templates)))%len(templates)]

	ev := s.materialize(ctx, tmpl, village)
	log.Info("event generated",
		"village_id", village.ID,
		"event_id", ev.ID,
		"type", ev.Type,
		"category", ev.Category,
		"severity", ev.Severity)
	return []domain.GameEvent{ev}
}

// materialize instantiates a template as an active event, asking the
// narrative collaborator for a description and falling back to the template
// text on any failure.
func (s *service) materialize(ctx context.Context, tmpl eventTemplate, village domain.Village) domain.GameEvent {
	description := s.describe(ctx, tmpl, village)

	return domain.GameEvent{
		ID:             s.newID(),
		Type:           tmpl.Type,
		Category:       tmpl.Category,
		Severity:       tmpl.Severity,
		Title:          tmpl.Title,
		Description:    description,
		Probability:    s.CalculateEventProbability(tmpl.Type, village),
		Effects:        tmpl.Effects,
		ChainReactions: tmpl.ChainReactions,
		PlayerChoices:  tmpl.PlayerChoices,
		IsActive:       true,
		CreatedAt:      s.now(),
	}
}

func (s *service) describe(ctx context.Context, tmpl eventTemplate, village domain.Village) string {
	if s.gen == nil {
		return tmpl.Fallback
	}

	genCtx, cancel := context.WithTimeout(ctx, NarrativeTimeout)
	defer cancel()

	text, err := s.gen.Generate(genCtx, narrative.KindEventDescription, narrative.Vars{
		"village":   village.Name,
		"location":  village.Location,
		"season":    village.Season,
		"weather":   village.Weather.Condition,
		"category":  tmpl.Category,
		"severity":  tmpl.Severity,
		"eventType": tmpl.Type,
	})
	if err != nil || text == "" {
		logger.FromContext(ctx).Debug("narrative fallback", "type", tmpl.Type, "error", err)
		return tmpl.Fallback
	}
	return text
}

// CalculateEventProbability scores how likely a given event type is for this
// village: base 10% scaled by the type modifier and the village's state, and
// always within [1,95].
func (s *service) CalculateEventProbability(eventType string, village domain.Village) float64 {
	tmpl, ok := eventTemplates[eventType]
	typeMod := 1.0
	if ok {
		typeMod = tmpl.TypeModifier
	}

	// Unstable, unhappy villages attract events; thriving ones dampen them.
	stateMod := 1.0
	if village.Stability < LowStabilityThreshold {
		stateMod += 0.5
	}
	if village.Happiness < 30 {
		stateMod += 0.3
	}
	if village.Prosperity > 70 {
		stateMod -= 0.2
	}

	return utils.Clamp(BaseEventProbability*typeMod*stateMod, MinEventProbability, MaxEventProbability)
}
