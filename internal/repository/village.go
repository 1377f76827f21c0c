// Package repository defines the persistence interfaces for village state,
// event history and scheduled events. Implementations live in
// internal/database and the in-memory store below.
package repository

import (
	"context"

	"github.com/aldermoor/villageforge/internal/domain"
)

// Village defines the interface for village state persistence. Villages are
// stored whole: the engine is responsible for consistency within one Save.
type Village interface {
	GetVillage(ctx context.Context, id string) (*domain.Village, error)
	SaveVillage(ctx context.Context, village *domain.Village) error
	DeleteVillage(ctx context.Context, id string) error
	ListVillageIDs(ctx context.Context) ([]string, error)
}

// EventHistory defines the interface for the per-village chronicle of
// resolved events.
type EventHistory interface {
	AppendHistory(ctx context.Context, villageID string, entry domain.HistoricalEvent) error
	GetHistory(ctx context.Context, villageID string, limit int) ([]domain.HistoricalEvent, error)
}

// ScheduledEvents defines the interface for the per-village future event
// list. The list is replaced whole on save.
type ScheduledEvents interface {
	SaveScheduledEvents(ctx context.Context, villageID string, events []domain.ScheduledEvent) error
	GetScheduledEvents(ctx context.Context, villageID string) ([]domain.ScheduledEvent, error)
}

// Store bundles the three persistence concerns behind one dependency.
type Store interface {
	Village
	EventHistory
	ScheduledEvents
}
