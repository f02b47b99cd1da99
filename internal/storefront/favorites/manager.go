// Package favorites owns the set of liked product identifiers.
package favorites

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// Manager is the single writer of the favorites snapshot. Identifiers are
// kept in insertion order for display; membership is a set.
type Manager struct {
	mu    sync.Mutex
	store model.SnapshotStore
	key   string
	ids   []string
	set   map[string]struct{}
}

// NewManager restores favorites from store, starting empty when the
// snapshot is missing or unreadable.
func NewManager(ctx context.Context, store model.SnapshotStore) *Manager {
	m := &Manager{
		store: store,
		key:   model.FavoritesSnapshotKey,
		ids:   []string{},
		set:   make(map[string]struct{}),
	}
	m.restore(ctx)
	return m
}

func (m *Manager) restore(ctx context.Context) {
	data, found, err := m.store.Load(ctx, m.key)
	if err != nil {
		logx.Warn().Err(err).Str("key", m.key).Msg("failed to load favorites snapshot, starting empty")
		return
	}
	if !found {
		return
	}

	var saved []string
	if err := json.Unmarshal(data, &saved); err != nil {
		logx.Warn().Err(err).Str("key", m.key).Msg("corrupt favorites snapshot, starting empty")
		return
	}
	for _, id := range saved {
		if _, dup := m.set[id]; dup || id == "" {
			continue
		}
		m.set[id] = struct{}{}
		m.ids = append(m.ids, id)
	}
}

func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.ids)
	if err != nil {
		logx.Error().Err(err).Str("key", m.key).Msg("failed to marshal favorites snapshot")
		return
	}
	if err := m.store.Save(ctx, m.key, data); err != nil {
		logx.Error().Err(err).Str("key", m.key).Int("count", len(m.ids)).Msg("failed to persist favorites snapshot")
	}
}

// ToggleFavorite removes id when present and adds it otherwise. It reports
// whether id is a favorite afterwards.
func (m *Manager) ToggleFavorite(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	var now bool
	if _, ok := m.set[id]; ok {
		delete(m.set, id)
		m.ids = slices.DeleteFunc(m.ids, func(v string) bool { return v == id })
	} else {
		m.set[id] = struct{}{}
		m.ids = append(m.ids, id)
		now = true
	}
	m.persist(ctx)
	return now
}

// IsFavorite is a pure membership test.
func (m *Manager) IsFavorite(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.set[id]
	return ok
}

// Favorites returns the identifiers in insertion order.
func (m *Manager) Favorites() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.ids...)
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ids)
}
