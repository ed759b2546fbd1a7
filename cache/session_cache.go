package session_cache

import (
	"context"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/reviews"
	"github.com/google/uuid"
)

const DefaultTTL = 30 * time.Minute

// ── Session ──────────────────────────────────────────────────────────────────
// One shopper's state. Owns its review ledger exclusively.

type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	ledger   *reviews.Ledger
	lastSeen time.Time
}

// WithLedger runs fn while holding the session lock. Requests from the same
// shopper may overlap; the ledger itself is not synchronized.
func (s *Session) WithLedger(fn func(l *reviews.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) >= ttl
}

// ── Store ────────────────────────────────────────────────────────────────────

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl         time.Duration
	seedReviews []models.Review
	ledgerOpts  []reviews.Option
	now         func() time.Time
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLedgerOptions passes options to every ledger the store creates.
func WithLedgerOptions(opts ...reviews.Option) Option {
	return func(s *Store) { s.ledgerOpts = append(s.ledgerOpts, opts...) }
}

// NewStore creates a store whose sessions start with a ledger seeded from
// seedReviews.
func NewStore(seedReviews []models.Review, opts ...Option) *Store {
	s := &Store{
		sessions:    make(map[string]*Session),
		ttl:         DefaultTTL,
		seedReviews: seedReviews,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a live session and refreshes its expiry. Expired sessions are
// dropped and reported as missing.
func (s *Store) Get(id string) (*Session, bool) {
	now := s.now()

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if sess.expired(now, s.ttl) {
		s.mu.Lock()
		if cur, ok := s.sessions[id]; ok && cur == sess {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		return nil, false
	}

	sess.touch(now)
	return sess, true
}

// Touch refreshes a live session's expiry without returning it.
func (s *Store) Touch(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Create starts a new session with a freshly seeded ledger.
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CreatedAt: now,
		ledger:    reviews.NewLedger(s.seedReviews, s.ledgerOpts...),
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Sweep removes every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunSweeper sweeps every interval until ctx is done. onSweep, if set, is
// told how many sessions each sweep removed.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := s.Sweep()
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}

// ── Invalidate everything ────────────────────────────────────────────────────

func (s *Store) Invalidate() {
	s.mu.Lock()
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
}
