// Package toast keeps at most one short-lived confirmation message.
package toast

import (
	"sync"
	"time"

	logx "github.com/somascents/storefront/pkg/logger"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// Toast is the active message.
type Toast struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Manager moves between Empty and Showing. A new toast replaces the active
// one and restarts the expiry timer; there is no queue.
type Manager struct {
	mu       sync.Mutex
	duration time.Duration
	current  *Toast
	timer    *time.Timer
	seq      uint64
}

// NewManager returns an empty manager. Non-positive durations use DefaultDuration.
func NewManager(duration time.Duration) *Manager {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Manager{duration: duration}
}

// ShowToast replaces any active toast with message.
func (m *Manager) ShowToast(message string) Toast {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
	m.seq++
	t := Toast{ID: m.seq, Message: message, CreatedAt: time.Now()}
	m.current = &t

	id := t.ID
	m.timer = time.AfterFunc(m.duration, func() { m.expire(id) })

	logx.Debug().Uint64("toast_id", id).Str("message", message).Msg("toast shown")
	return t
}

// expire clears the toast only if it is still the one the timer was armed
// for; a stopped timer that already fired must not clear its successor.
func (m *Manager) expire(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.ID != id {
		return
	}
	m.current = nil
	m.timer = nil
}

// HideToast clears the active toast and cancels its timer.
func (m *Manager) HideToast() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.current = nil
}

func (m *Manager) stopLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// Current returns the active toast, if any.
func (m *Manager) Current() (Toast, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Toast{}, false
	}
	return *m.current, true
}

// Close tears the manager down, cancelling any pending expiry.
func (m *Manager) Close() {
	m.HideToast()
}
