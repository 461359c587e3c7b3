package session

import (
	"sync"
	"time"

	"virtual-product-studio/api/pkg/models"
)

// Session owns one shopper's cart, wishlist, compare list and order history.
// The aggregates are only reached through Update and View, which hold the
// session lock for the duration of the callback.
type Session struct {
	Id        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	now      Clock

	cart     *Cart
	wishlist *Wishlist
	compare  *Compare
	orders   *OrderHistory
}

// State is the set of aggregates handed to Update and View callbacks.
type State struct {
	Cart     *Cart
	Wishlist *Wishlist
	Compare  *Compare
	Orders   *OrderHistory
}

func New(id string, now Clock) *Session {
	if now == nil {
		now = time.Now
	}
	created := now()
	return &Session{
		Id:        id,
		CreatedAt: created,
		lastSeen:  created,
		now:       now,
		cart:      NewCart(),
		wishlist:  NewWishlist(now),
		compare:   NewCompare(),
		orders:    NewOrderHistory(now),
	}
}

func (s *Session) state() State {
	return State{Cart: s.cart, Wishlist: s.wishlist, Compare: s.compare, Orders: s.orders}
}

// Update runs fn with exclusive access to the aggregates and marks the session active.
func (s *Session) Update(fn func(State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	return fn(s.state())
}

// View runs fn with exclusive access to the aggregates. fn must not mutate them.
func (s *Session) View(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	fn(s.state())
}

func (s *Session) idleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Summary reports the aggregate counts.
func (s *Session) Summary() models.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SessionSummary{
		Id:            s.Id,
		CreatedAt:     s.CreatedAt,
		LastSeenAt:    s.lastSeen,
		CartItemCount: s.cart.ItemCount(),
		CartTotal:     s.cart.Total(),
		WishlistCount: s.wishlist.Count(),
		CompareCount:  s.compare.Count(),
		OrderCount:    s.orders.Count(),
	}
}
