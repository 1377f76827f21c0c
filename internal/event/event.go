// Package event provides the in-process event bus the simulation publishes
// village lifecycle events on. Consumers (metrics, logging, future surfaces)
// subscribe by type; publishing never blocks a tick on a slow consumer beyond
// the handler call itself.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aldermoor/villageforge/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	TickCompleted  Type = "village.tick.completed"
	EventGenerated Type = "village.event.generated"
	EventResolved  Type = "village.event.resolved"
	ChoiceResolved Type = "village.choice.resolved"
	CrisisDetected Type = "village.crisis.detected"
	TradeExecuted  Type = "village.trade.executed"
	VillageCreated Type = "village.created"
)

// Typed event payloads for type safety

// TickCompletedPayloadV1 is the typed payload for tick completion events
type TickCompletedPayloadV1 struct {
	VillageID       string  `json:"village_id"`
	DeltaHours      float64 `json:"delta_hours"`
	EventsGenerated int     `json:"events_generated"`
	CrisisLevel     float64 `json:"crisis_level"`
	Timestamp       int64   `json:"timestamp"`
}

// VillageEventPayloadV1 is the typed payload for event lifecycle events
type VillageEventPayloadV1 struct {
	VillageID string `json:"village_id"`
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Category  string `json:"category"`
	Severity  string `json:"severity"`
	Outcome   string `json:"outcome,omitempty"`
	ChoiceID  string `json:"choice_id,omitempty"`
}

// CrisisDetectedPayloadV1 is the typed payload for crisis detection events
type CrisisDetectedPayloadV1 struct {
	VillageID string  `json:"village_id"`
	Resource  string  `json:"resource"`
	Type      string  `json:"type"`
	Severity  string  `json:"severity"`
	Urgency   float64 `json:"urgency"`
}

// TradeExecutedPayloadV1 is the typed payload for trade execution events
type TradeExecutedPayloadV1 struct {
	VillageID string  `json:"village_id"`
	RouteID   string  `json:"route_id"`
	Success   bool    `json:"success"`
	NetProfit float64 `json:"net_profit"`
	Timestamp int64   `json:"timestamp"`
}

// Type-safe event constructors

// NewTickCompletedEvent creates a new tick completion event
func NewTickCompletedEvent(villageID string, deltaHours float64, eventsGenerated int, crisisLevel float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TickCompleted,
		Payload: TickCompletedPayloadV1{
			VillageID:       villageID,
			DeltaHours:      deltaHours,
			EventsGenerated: eventsGenerated,
			CrisisLevel:     crisisLevel,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewEventGeneratedEvent creates a new event-generated event
func NewEventGeneratedEvent(villageID string, gameEvent domain.GameEvent) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EventGenerated,
		Payload: VillageEventPayloadV1{
			VillageID: villageID,
			EventID:   gameEvent.ID,
			EventType: gameEvent.Type,
			Category:  string(gameEvent.Category),
			Severity:  string(gameEvent.Severity),
		},
		Metadata: nil,
	}
}

// NewEventResolvedEvent creates a new event-resolved event
func NewEventResolvedEvent(villageID string, outcome domain.EventOutcome, gameEvent domain.GameEvent) Event {
	eventType := EventResolved
	if outcome.ChoiceID != "" {
		eventType = ChoiceResolved
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: VillageEventPayloadV1{
			VillageID: villageID,
			EventID:   outcome.EventID,
			EventType: gameEvent.Type,
			Category:  string(gameEvent.Category),
			Severity:  string(gameEvent.Severity),
			Outcome:   outcome.Result,
			ChoiceID:  outcome.ChoiceID,
		},
		Metadata: nil,
	}
}

// NewCrisisDetectedEvent creates a new crisis detection event
func NewCrisisDetectedEvent(villageID string, crisis domain.ResourceCrisis) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CrisisDetected,
		Payload: CrisisDetectedPayloadV1{
			VillageID: villageID,
			Resource:  string(crisis.Resource),
			Type:      string(crisis.Type),
			Severity:  string(crisis.Severity),
			Urgency:   crisis.Urgency,
		},
		Metadata: nil,
	}
}

// NewTradeExecutedEvent creates a new trade execution event
func NewTradeExecutedEvent(villageID string, result domain.TradeResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TradeExecuted,
		Payload: TradeExecutedPayloadV1{
			VillageID: villageID,
			RouteID:   result.RouteID,
			Success:   result.Success,
			NetProfit: result.NetProfit,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
