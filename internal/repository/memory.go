package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aldermoor/villageforge/internal/domain"
)

// Memory is an in-process Store used by the offline simulator and tests.
// Values are stored as JSON under the same key scheme the database uses
// (village:<id>, village:<id>:event_history, village:<id>:scheduled_events),
// so round-trip behavior matches the real store.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func villageKey(id string) string   { return "village:" + id }
func historyKey(id string) string   { return "village:" + id + ":event_history" }
func scheduledKey(id string) string { return "village:" + id + ":scheduled_events" }

func (m *Memory) get(key string, out any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (m *Memory) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

// GetVillage loads one village by ID.
func (m *Memory) GetVillage(ctx context.Context, id string) (*domain.Village, error) {
	var v domain.Village
	ok, err := m.get(villageKey(id), &v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrVillageNotFound
	}
	return &v, nil
}

// SaveVillage upserts one village.
func (m *Memory) SaveVillage(ctx context.Context, village *domain.Village) error {
	if village == nil || village.ID == "" {
		return domain.ErrInvalidInput
	}
	return m.set(villageKey(village.ID), village)
}

// DeleteVillage removes a village and its associated keys.
func (m *Memory) DeleteVillage(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[villageKey(id)]; !ok {
		return domain.ErrVillageNotFound
	}
	delete(m.data, villageKey(id))
	delete(m.data, historyKey(id))
	delete(m.data, scheduledKey(id))
	return nil
}

// ListVillageIDs returns all stored village IDs in stable order.
func (m *Memory) ListVillageIDs(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	prefix := "village:"
	for key := range m.data {
		rest, ok := strings.CutPrefix(key, prefix)
		if ok && !strings.Contains(rest, ":") {
			ids = append(ids, rest)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// AppendHistory adds one chronicle entry for a village.
func (m *Memory) AppendHistory(ctx context.Context, villageID string, entry domain.HistoricalEvent) error {
	var history []domain.HistoricalEvent
	if _, err := m.get(historyKey(villageID), &history); err != nil {
		return err
	}
	history = append(history, entry)
	return m.set(historyKey(villageID), history)
}

// GetHistory returns up to limit most recent entries, newest last. A limit
// of zero or less returns everything.
func (m *Memory) GetHistory(ctx context.Context, villageID string, limit int) ([]domain.HistoricalEvent, error) {
	var history []domain.HistoricalEvent
	if _, err := m.get(historyKey(villageID), &history); err != nil {
		return nil, err
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}

// SaveScheduledEvents replaces the scheduled event list for a village.
func (m *Memory) SaveScheduledEvents(ctx context.Context, villageID string, events []domain.ScheduledEvent) error {
	return m.set(scheduledKey(villageID), events)
}

// GetScheduledEvents returns the scheduled event list for a village.
func (m *Memory) GetScheduledEvents(ctx context.Context, villageID string) ([]domain.ScheduledEvent, error) {
	var events []domain.ScheduledEvent
	if _, err := m.get(scheduledKey(villageID), &events); err != nil {
		return nil, err
	}
	return events, nil
}
