package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/domain"
)

func TestMemoryBus_PublishAndSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var mu sync.Mutex
	var received []Event
	bus.Subscribe(TickCompleted, func(ctx context.Context, e Event) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
		return nil
	})

	ev := NewTickCompletedEvent("village-1", 24, 2, 35.0)
	require.NoError(t, bus.Publish(context.Background(), ev))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, TickCompleted, received[0].Type)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	ev := NewCrisisDetectedEvent("village-1", domain.ResourceCrisis{
		Type:     domain.CrisisShortage,
		Resource: domain.ResourceFood,
		Severity: domain.SeverityMajor,
		Urgency:  80,
	})
	assert.NoError(t, bus.Publish(context.Background(), ev))
}

func TestMemoryBus_HandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(EventGenerated, func(ctx context.Context, e Event) error {
		return errors.New("handler one broke")
	})
	var called bool
	bus.Subscribe(EventGenerated, func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), NewEventGeneratedEvent("village-1", domain.GameEvent{
		ID:       "ev-1",
		Type:     "storm",
		Category: domain.CategoryNatural,
		Severity: domain.SeverityModerate,
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler one broke")
	assert.True(t, called, "remaining handlers should still run after a failure")
}

func TestDecodePayload_TypeAssertion(t *testing.T) {
	payload := TickCompletedPayloadV1{VillageID: "village-1", DeltaHours: 24}
	decoded, err := DecodePayload[TickCompletedPayloadV1](payload)
	require.NoError(t, err)
	assert.Equal(t, "village-1", decoded.VillageID)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{
		"village_id":  "village-2",
		"delta_hours": float64(12),
	}
	decoded, err := DecodePayload[TickCompletedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "village-2", decoded.VillageID)
	assert.Equal(t, 12.0, decoded.DeltaHours)
}

func TestNewEventResolvedEvent_ChoiceSelectsType(t *testing.T) {
	storm := domain.GameEvent{ID: "ev-1", Type: "storm", Category: domain.CategoryNatural, Severity: domain.SeverityModerate}
	plain := NewEventResolvedEvent("v1", domain.EventOutcome{EventID: "ev-1", Result: "resolved"}, storm)
	assert.Equal(t, EventResolved, plain.Type)

	dispute := domain.GameEvent{ID: "ev-2", Type: "dispute", Category: domain.CategorySocial, Severity: domain.SeverityMinor}
	chosen := NewEventResolvedEvent("v1", domain.EventOutcome{EventID: "ev-2", Result: "success", ChoiceID: "mediate"}, dispute)
	assert.Equal(t, ChoiceResolved, chosen.Type)

	payload, err := DecodePayload[VillageEventPayloadV1](chosen.Payload)
	require.NoError(t, err)
	assert.Equal(t, "mediate", payload.ChoiceID)
}

func TestResilientPublisher_RetriesThenSucceeds(t *testing.T) {
	inner := &flakyBus{failures: 2}
	pub := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})

	err := pub.Publish(context.Background(), NewTickCompletedEvent("v1", 24, 0, 0))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return inner.successes() == 1
	}, time.Second, 5*time.Millisecond)
}

type flakyBus struct {
	mu       sync.Mutex
	failures int
	ok       int
}

func (f *flakyBus) Publish(ctx context.Context, e Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("bus unavailable")
	}
	f.ok++
	return nil
}

func (f *flakyBus) Subscribe(eventType Type, handler Handler) {}

func (f *flakyBus) successes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ok
}
