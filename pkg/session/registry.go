package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Option func(*Registry)

// WithClock replaces time.Now for expiry and id stamps.
func WithClock(now Clock) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithIDGenerator replaces the uuid session id generator.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		r.newID = gen
	}
}

// Registry maps session ids to live sessions. Sessions idle for longer
// than the ttl are dropped the next time they are looked up or when a
// new session is created. A ttl <= 0 disables expiry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      Clock
	newID    func() string
}

func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && s.idleFor(now) > r.ttl
}

// Create registers a new empty session.
func (r *Registry) Create() *Session {
	s := New(r.newID(), r.now)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(r.now())
	r.sessions[s.Id] = s
	return s
}

// Get returns a live session. An expired session is removed and reported missing.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if r.expired(s, r.now()) {
		r.mu.Lock()
		if current, ok := r.sessions[id]; ok && current == s {
			delete(r.sessions, id)
		}
		r.mu.Unlock()
		return nil, false
	}
	return s, true
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len counts registered sessions, including expired ones not yet swept.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
}
