// Package postgres implements the repository interfaces on PostgreSQL.
// Village state is stored whole as JSONB; the engine guarantees consistency
// within a single save.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aldermoor/villageforge/internal/domain"
)

// VillageRepository implements repository.Store for PostgreSQL
type VillageRepository struct {
	db *pgxpool.Pool
}

// NewVillageRepository creates a new VillageRepository
func NewVillageRepository(db *pgxpool.Pool) *VillageRepository {
	return &VillageRepository{db: db}
}

// GetVillage loads one village by ID.
func (r *VillageRepository) GetVillage(ctx context.Context, id string) (*domain.Village, error) {
	var state []byte
	query := `SELECT state FROM villages WHERE village_id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVillageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get village %s: %w", id, err)
	}

	var village domain.Village
	if err := json.Unmarshal(state, &village); err != nil {
		return nil, fmt.Errorf("failed to decode village %s: %w", id, err)
	}
	return &village, nil
}

// SaveVillage upserts one village's full state.
func (r *VillageRepository) SaveVillage(ctx context.Context, village *domain.Village) error {
	if village == nil || village.ID == "" {
		return domain.ErrInvalidInput
	}
	state, err := json.Marshal(village)
	if err != nil {
		return fmt.Errorf("failed to encode village %s: %w", village.ID, err)
	}

	query := `
		INSERT INTO villages (village_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (village_id)
		DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, village.ID, state); err != nil {
		return fmt.Errorf("failed to save village %s: %w", village.ID, err)
	}
	return nil
}

// DeleteVillage removes a village; history and scheduled events cascade.
func (r *VillageRepository) DeleteVillage(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM villages WHERE village_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete village %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVillageNotFound
	}
	return nil
}

// ListVillageIDs returns all stored village IDs in stable order.
func (r *VillageRepository) ListVillageIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT village_id FROM villages ORDER BY village_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list villages: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan village id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AppendHistory adds one chronicle entry for a village.
func (r *VillageRepository) AppendHistory(ctx context.Context, villageID string, entry domain.HistoricalEvent) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}
	query := `
		INSERT INTO village_event_history (village_id, entry, resolved_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(ctx, query, villageID, raw, entry.ResolvedAt); err != nil {
		return fmt.Errorf("failed to append history for %s: %w", villageID, err)
	}
	return nil
}

// GetHistory returns up to limit most recent entries, oldest first. A limit
// of zero or less returns everything.
func (r *VillageRepository) GetHistory(ctx context.Context, villageID string, limit int) ([]domain.HistoricalEvent, error) {
	query := `
		SELECT entry FROM village_event_history
		WHERE village_id = $1
		ORDER BY resolved_at DESC, id DESC
	`
	args := []any{villageID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get history for %s: %w", villageID, err)
	}
	defer rows.Close()

	var history []domain.HistoricalEvent
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		var entry domain.HistoricalEvent
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode history entry: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query returns newest first for the LIMIT; callers read oldest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// SaveScheduledEvents replaces the scheduled event list for a village.
func (r *VillageRepository) SaveScheduledEvents(ctx context.Context, villageID string, events []domain.ScheduledEvent) error {
	if events == nil {
		events = []domain.ScheduledEvent{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode scheduled events: %w", err)
	}
	query := `
		INSERT INTO village_scheduled_events (village_id, events, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (village_id)
		DO UPDATE SET events = EXCLUDED.events, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, villageID, raw); err != nil {
		return fmt.Errorf("failed to save scheduled events for %s: %w", villageID, err)
	}
	return nil
}

// GetScheduledEvents returns the scheduled event list for a village.
func (r *VillageRepository) GetScheduledEvents(ctx context.Context, villageID string) ([]domain.ScheduledEvent, error) {
	var raw []byte
	query := `SELECT events FROM village_scheduled_events WHERE village_id = $1`
	err := r.db.QueryRow(ctx, query, villageID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled events for %s: %w", villageID, err)
	}

	var events []domain.ScheduledEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("failed to decode scheduled events for %s: %w", villageID, err)
	}
	return events, nil
}
