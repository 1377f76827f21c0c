package domain

import "time"

// EventCategory groups events for weighted selection.
type EventCategory string

const (
	CategoryNatural  EventCategory = "natural"
	CategorySocial   EventCategory = "social"
	CategoryEconomic EventCategory = "economic"
	CategoryMagical  EventCategory = "magical"
	CategoryCrisis   EventCategory = "crisis"
)

// EventSeverity grades how hard an event hits the village.
type EventSeverity string

const (
	SeverityBeneficial   EventSeverity = "beneficial"
	SeverityMinor        EventSeverity = "minor"
	SeverityModerate     EventSeverity = "moderate"
	SeverityMajor        EventSeverity = "major"
	SeverityCatastrophic EventSeverity = "catastrophic"
)

// EventEffects are deltas applied to village aggregates and stocks when an
// event or choice outcome lands. Percentage fields clamp to [0,100] after
// application.
type EventEffects struct {
	Happiness  float64                  `json:"happiness,omitempty"`
	Stability  float64                  `json:"stability,omitempty"`
	Prosperity float64                  `json:"prosperity,omitempty"`
	Defense    float64                  `json:"defense,omitempty"`
	Population int                      `json:"population,omitempty"`
	Resources  map[ResourceType]float64 `json:"resources,omitempty"`
}

// Scale returns the effects with every delta multiplied by factor.
func (e EventEffects) Scale(factor float64) EventEffects {
	out := EventEffects{
		Happiness:  e.Happiness * factor,
		Stability:  e.Stability * factor,
		Prosperity: e.Prosperity * factor,
		Defense:    e.Defense * factor,
		Population: int(float64(e.Population) * factor),
	}
	if e.Resources != nil {
		out.Resources = make(map[ResourceType]float64, len(e.Resources))
		for k, v := range e.Resources {
			out.Resources[k] = v * factor
		}
	}
	return out
}

// ChainReaction is a probability-gated follow-up event candidate.
type ChainReaction struct {
	EventType   string  `json:"event_type"`
	Probability float64 `json:"probability"`         // 0-1
	DelayDays   int     `json:"delay_days"`          // 0 = immediate
	Condition   string  `json:"condition,omitempty"` // predicate key, empty = always
}

// ChoiceOutcome is one branch of a player choice resolution.
type ChoiceOutcome struct {
	Effects   EventEffects `json:"effects"`
	Narrative string       `json:"narrative"`
}

// PlayerChoice is one resolvable option attached to an event.
type PlayerChoice struct {
	ID           string            `json:"id"`
	Label        string            `json:"label"`
	Requirements []TransactionCost `json:"requirements,omitempty"` // must be available, not spent
	ResourceCost []TransactionCost `json:"resource_cost,omitempty"`

	SuccessChance         float64 `json:"success_chance"`          // 0-100
	CriticalSuccessChance float64 `json:"critical_success_chance"` // 0-100, subset of success band

	Success         ChoiceOutcome `json:"success"`
	CriticalSuccess ChoiceOutcome `json:"critical_success"`
	Failure         ChoiceOutcome `json:"failure"`

	ChainEventTypes []string `json:"chain_event_types,omitempty"`
}

// GameEvent is a materialized event in the village's event state machine:
// candidate (weighted, not yet created) -> active -> resolved (terminal).
type GameEvent struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Category    EventCategory `json:"category"`
	Severity    EventSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`

	Probability       float64  `json:"probability"` // 0-100, as triggered
	TriggerConditions []string `json:"trigger_conditions,omitempty"`

	Effects        EventEffects    `json:"effects"`
	ChainReactions []ChainReaction `json:"chain_reactions,omitempty"`
	PlayerChoices  []PlayerChoice  `json:"player_choices,omitempty"`

	TimeLimit *time.Duration `json:"time_limit,omitempty"`

	ParentEventID string   `json:"parent_event_id,omitempty"`
	ChildEventIDs []string `json:"child_event_ids,omitempty"`

	IsActive   bool      `json:"is_active"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
	ResolvedAt time.Time `json:"resolved_at,omitempty"`
}

// EventOutcome is the result of processing an event or resolving a choice.
type EventOutcome struct {
	EventID    string       `json:"event_id"`
	ChoiceID   string       `json:"choice_id,omitempty"`
	Result     string       `json:"result"` // "resolved", "success", "critical_success", "failure"
	Effects    EventEffects `json:"effects"`
	Narrative  string       `json:"narrative"`
	ChainedIDs []string     `json:"chained_ids,omitempty"`
}

// ScheduledEvent is a future event the engine will materialize when due.
type ScheduledEvent struct {
	ID         string        `json:"id"`
	EventType  string        `json:"event_type"`
	Category   EventCategory `json:"category"`
	DueAt      time.Time     `json:"due_at"`
	Recurrence string        `json:"recurrence,omitempty"` // "seasonal" or empty
	Season     Season        `json:"season,omitempty"`
	ParentID   string        `json:"parent_id,omitempty"`
}

// HistoricalEvent is the persisted record of a resolved event.
type HistoricalEvent struct {
	EventID         string        `json:"event_id"`
	Type            string        `json:"type"`
	Category        EventCategory `json:"category"`
	Severity        EventSeverity `json:"severity"`
	Title           string        `json:"title"`
	Outcome         string        `json:"outcome"`
	ShortTermImpact string        `json:"short_term_impact"`
	LongTermImpact  string        `json:"long_term_impact"`
	ResolvedAt      time.Time     `json:"resolved_at"`
}
