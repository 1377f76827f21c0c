package metrics

import (
	"context"
	"strconv"

	"github.com/aldermoor/villageforge/internal/event"
	"github.com/aldermoor/villageforge/internal/logger"
)

// EventMetricsCollector subscribes to bus events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TickCompleted,
		event.EventGenerated,
		event.EventResolved,
		event.ChoiceResolved,
		event.CrisisDetected,
		event.TradeExecuted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes bus events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TickCompleted:
		payload, err := event.DecodePayload[event.TickCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		TicksProcessed.Inc()
		CrisisLevel.WithLabelValues(payload.VillageID).Set(payload.CrisisLevel)

	case event.EventGenerated:
		payload, err := event.DecodePayload[event.VillageEventPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		VillageEventsGenerated.WithLabelValues(payload.Category, payload.Severity).Inc()

	case event.EventResolved, event.ChoiceResolved:
		payload, err := event.DecodePayload[event.VillageEventPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		VillageEventsResolved.WithLabelValues(payload.Outcome).Inc()

	case event.CrisisDetected:
		payload, err := event.DecodePayload[event.CrisisDetectedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		CrisesDetected.WithLabelValues(payload.Type, payload.Severity).Inc()

	case event.TradeExecuted:
		payload, err := event.DecodePayload[event.TradeExecutedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		TradesExecuted.WithLabelValues(strconv.FormatBool(payload.Success)).Inc()
		if payload.Success {
			TradeProfit.Add(payload.NetProfit)
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
