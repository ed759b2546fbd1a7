// Package reviews holds the session-scoped review ledger: a newest-first list
// of reviews that only ever grows.
package reviews

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/google/uuid"
)

const (
	// DefaultAuthor labels every review submitted through the storefront.
	DefaultAuthor = "You"

	MinRating = 1
	MaxRating = 5
)

var ErrEmptyComment = errors.New("reviews: comment is empty")

// Ledger is not safe for concurrent use. It belongs to a single session, which
// is responsible for serializing access.
type Ledger struct {
	entries []models.Review
	now     func() time.Time
	newID   func() string
	author  string
}

type Option func(*Ledger)

// WithClock overrides the clock used to date submissions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides review id generation.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// WithAuthor overrides the placeholder author label.
func WithAuthor(name string) Option {
	return func(l *Ledger) { l.author = name }
}

// NewLedger returns a ledger holding a copy of seed, in seed order.
func NewLedger(seed []models.Review, opts ...Option) *Ledger {
	l := &Ledger{
		entries: slices.Clone(seed),
		now:     time.Now,
		newID:   newReviewID,
		author:  DefaultAuthor,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func newReviewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Submit records a review for productID and places it first in the ledger.
// A blank comment is rejected with ErrEmptyComment and leaves the ledger
// unchanged. Ratings outside 1..5 are clamped. The date is the UTC calendar day.
func (l *Ledger) Submit(productID string, rating int, comment string) (models.Review, error) {
	if strings.TrimSpace(comment) == "" {
		return models.Review{}, ErrEmptyComment
	}

	review := models.Review{
		ID:        l.newID(),
		ProductID: productID,
		UserName:  l.author,
		Rating:    ClampRating(rating),
		Comment:   comment,
		Date:      l.now().UTC().Format(models.DateLayout),
	}
	l.entries = slices.Insert(l.entries, 0, review)
	return review, nil
}

// ListForProduct returns the reviews of productID, newest first.
func (l *Ledger) ListForProduct(productID string) []models.Review {
	out := make([]models.Review, 0)
	for _, r := range l.entries {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// Len reports the number of reviews in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// ClampRating forces rating into MinRating..MaxRating.
func ClampRating(rating int) int {
	return min(max(rating, MinRating), MaxRating)
}
