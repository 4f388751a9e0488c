// Package session holds the currently authenticated identity. Repositories
// receive the manager at construction and subscribe to changes instead of
// importing a shared global.
package session

import (
	"sort"
	"sync"

	"github.com/havenstay/backend/internal/models"
)

// Manager owns the active identity, or none. Subscribers are notified
// synchronously, in registration order, on every change.
type Manager struct {
	mu      sync.RWMutex
	current *models.User
	subs    map[int]func(*models.User)
	nextID  int
}

func NewManager() *Manager {
	return &Manager{subs: make(map[int]func(*models.User))}
}

// Current returns the active identity or nil.
func (m *Manager) Current() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	cp := *m.current
	return &cp
}

// Subscribe registers fn for session changes and returns an unsubscribe
// function. fn receives the new identity (nil on logout).
func (m *Manager) Subscribe(fn func(*models.User)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Set replaces the active identity and notifies every subscriber. Passing
// nil clears the session.
func (m *Manager) Set(u *models.User) {
	m.mu.Lock()
	if u != nil {
		cp := *u
		m.current = &cp
	} else {
		m.current = nil
	}
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(*models.User), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.subs[id])
	}
	m.mu.Unlock()

	// subscribers run without the lock so they may call Current
	for _, fn := range fns {
		fn(u)
	}
}
