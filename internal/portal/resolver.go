package portal

import (
	"context"
	"errors"
	"time"

	"github.com/theomoutet/coach-portal/internal/models"
)

var (
	// ErrNotFound is what a ProfileStore returns when no row exists yet.
	ErrNotFound = errors.New("profile not found")

	// ErrProfileMissing is the resolver's terminal failure: the profile
	// never appeared within the retry budget.
	ErrProfileMissing = errors.New("profile missing after retries")

	ErrEmptyUserID = errors.New("empty user id")
)

type ProfileStore interface {
	ProfileByID(ctx context.Context, id string) (*models.UserProfile, error)
}

// Resolver fetches the single profile row for a user identifier. Profile
// rows are created asynchronously after signup, so a not-found is retried
// after a fixed backoff. The retry budget is bounded, so a permanently
// missing profile terminates instead of looping.
type Resolver struct {
	store    ProfileStore
	attempts int
	backoff  time.Duration
}

func NewResolver(store ProfileStore) *Resolver {
	return &Resolver{
		store:    store,
		attempts: 5,
		backoff:  time.Second,
	}
}

// WithRetry overrides the retry budget. Zero or negative values keep the
// previous setting.
func (r *Resolver) WithRetry(attempts int, backoff time.Duration) *Resolver {
	if attempts > 0 {
		r.attempts = attempts
	}
	if backoff > 0 {
		r.backoff = backoff
	}
	return r
}

// Resolve returns exactly the persisted row on success. On failure no
// profile is retained: not-found beyond the budget yields
// ErrProfileMissing, any other store failure is returned as-is.
func (r *Resolver) Resolve(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	for attempt := 1; ; attempt++ {
		profile, err := r.store.ProfileByID(ctx, userID)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if attempt >= r.attempts {
			return nil, ErrProfileMissing
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff):
		}
	}
}
