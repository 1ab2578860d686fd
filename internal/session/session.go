package session

import (
	"sync"

	"github.com/martify/go-storefront/internal/auth"
	"github.com/martify/go-storefront/internal/cart"
	"github.com/martify/go-storefront/internal/checkout"
	"github.com/martify/go-storefront/internal/compare"
	"github.com/martify/go-storefront/internal/coupon"
	"github.com/martify/go-storefront/internal/recent"
	"github.com/martify/go-storefront/internal/wishlist"
)

// State is the per-session shopping state: the signed-in user, cart
// ledger plus the applied coupon slot, wishlist, compare set,
// recently-viewed list and checkout progress. Each state carries its
// own lock; handlers hold it across a read-modify-write.
type State struct {
	sync.Mutex

	// Hydrated marks that persisted session pieces (user, cart
	// snapshot, recently-viewed list) have been restored from keyed
	// storage.
	Hydrated bool

	User     *auth.SessionUser // nil when signed out
	Cart     *cart.Ledger
	Applied  *coupon.Coupon // at most one active coupon; applying replaces
	Wishlist *wishlist.Set
	Compare  *compare.Set
	Recent   *recent.List
	Checkout *checkout.Flow
}

func newState() *State {
	return &State{
		Cart:     cart.NewLedger(),
		Wishlist: wishlist.NewSet(),
		Compare:  compare.NewSet(),
		Recent:   recent.NewList(),
		Checkout: checkout.NewFlow(),
	}
}

// Manager owns all live session states, keyed by session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// Get returns the state for the session, creating it on first use.
func (m *Manager) Get(id string) *State {
	m.mu.RLock()
	st, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return st
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok = m.sessions[id]; ok {
		return st
	}
	st = newState()
	m.sessions[id] = st
	return st
}

func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
