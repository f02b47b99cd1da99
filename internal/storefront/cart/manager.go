// Package cart owns the shopping cart and keeps its snapshot in sync with
// the configured SnapshotStore.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// Manager is the single writer of the cart snapshot. Lines keep the order in
// which products were first added; at most one line exists per product.
type Manager struct {
	mu    sync.Mutex
	store model.SnapshotStore
	key   string
	lines []model.CartLine
}

// NewManager restores the cart from store. A missing, unreadable or corrupt
// snapshot yields an empty cart; the failure is logged, never returned.
func NewManager(ctx context.Context, store model.SnapshotStore) *Manager {
	m := &Manager{
		store: store,
		key:   model.CartSnapshotKey,
		lines: []model.CartLine{},
	}
	m.restore(ctx)
	return m
}

func (m *Manager) restore(ctx context.Context) {
	data, found, err := m.store.Load(ctx, m.key)
	if err != nil {
		logx.Warn().Err(err).Str("key", m.key).Msg("failed to load cart snapshot, starting empty")
		return
	}
	if !found {
		return
	}

	var saved []model.CartLine
	if err := json.Unmarshal(data, &saved); err != nil {
		logx.Warn().Err(err).Str("key", m.key).Msg("corrupt cart snapshot, starting empty")
		return
	}

	for _, l := range saved {
		if l.ID == "" || l.Quantity < 1 {
			logx.Warn().Str("key", m.key).Str("id", l.ID).Int("quantity", l.Quantity).Msg("dropping invalid cart line from snapshot")
			continue
		}
		if i := m.indexOf(l.ID); i >= 0 {
			m.lines[i].Quantity += l.Quantity
			continue
		}
		m.lines = append(m.lines, l)
	}
}

func (m *Manager) indexOf(id string) int {
	for i := range m.lines {
		if m.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with mu held. Failures are logged and swallowed:
// the in-memory cart stays authoritative for the session.
func (m *Manager) persist(ctx context.Context) {
	data, err := json.Marshal(m.lines)
	if err != nil {
		logx.Error().Err(err).Str("key", m.key).Msg("failed to marshal cart snapshot")
		return
	}
	if err := m.store.Save(ctx, m.key, data); err != nil {
		logx.Error().Err(err).Str("key", m.key).Int("lines", len(m.lines)).Msg("failed to persist cart snapshot")
	}
}

// AddToCart merges quantity into the product's line, appending a new line
// when the product is not in the cart yet. Quantities below one are rejected
// and leave the cart unchanged.
func (m *Manager) AddToCart(ctx context.Context, product model.Product, quantity int) error {
	if product.ID == "" {
		return errx.ErrMissingProductID
	}
	if quantity < 1 {
		return errx.ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(product.ID); i >= 0 {
		m.lines[i].Quantity += quantity
	} else {
		m.lines = append(m.lines, model.CartLine{Product: product.Clone(), Quantity: quantity})
	}
	m.persist(ctx)
	return nil
}

// RemoveFromCart deletes the line for id. Unknown ids are a no-op.
func (m *Manager) RemoveFromCart(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(id)
	m.persist(ctx)
}

func (m *Manager) removeLocked(id string) {
	if i := m.indexOf(id); i >= 0 {
		m.lines = append(m.lines[:i], m.lines[i+1:]...)
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity of
// zero or less removes the line.
func (m *Manager) UpdateQuantity(ctx context.Context, id string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(id)
	} else if i := m.indexOf(id); i >= 0 {
		m.lines[i].Quantity = quantity
	}
	m.persist(ctx)
}

// ClearCart empties the cart.
func (m *Manager) ClearCart(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = []model.CartLine{}
	m.persist(ctx)
}

// TotalPrice is the sum of price times quantity over all lines.
func (m *Manager) TotalPrice() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalPrice(m.lines)
}

// TotalItems is the sum of quantities over all lines.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalItems(m.lines)
}

// Lines returns a copy of the cart lines in insertion order.
func (m *Manager) Lines() []model.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneLines(m.lines)
}

// Line returns the line for id.
func (m *Manager) Line(id string) (model.CartLine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		l := m.lines[i]
		l.Product = l.Product.Clone()
		return l, true
	}
	return model.CartLine{}, false
}

// Summary returns lines and aggregates from one consistent view.
func (m *Manager) Summary() model.CartSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return model.CartSummary{
		Lines:      cloneLines(m.lines),
		TotalPrice: totalPrice(m.lines),
		TotalItems: totalItems(m.lines),
	}
}

func cloneLines(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	for i, l := range lines {
		out[i] = model.CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}

func totalPrice(lines []model.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

func totalItems(lines []model.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
