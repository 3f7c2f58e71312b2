package basket

import "sync"

// Manager maps storefront session ids to their baskets. Each basket is
// owned by exactly one session; the lock only guards the map itself.
type Manager struct {
	mu      sync.RWMutex
	baskets map[string]*Basket
}

func NewManager() *Manager {
	return &Manager{baskets: make(map[string]*Basket)}
}

// Get returns the basket for sessionID, creating an empty one on first use.
func (m *Manager) Get(sessionID string) *Basket {
	m.mu.RLock()
	b, ok := m.baskets[sessionID]
	m.mu.RUnlock()
	if ok {
		return b
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.baskets[sessionID]; ok {
		return b
	}
	b = New()
	m.baskets[sessionID] = b
	return b
}

// Drop forgets a session's basket entirely.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.baskets, sessionID)
	m.mu.Unlock()
}
