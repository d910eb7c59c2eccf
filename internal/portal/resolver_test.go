package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/theomoutet/coach-portal/internal/models"
)

type stubProfileStore struct {
	calls       int
	profileFn   func(call int) (*models.UserProfile, error)
	lastQueried string
}

func (s *stubProfileStore) ProfileByID(_ context.Context, id string) (*models.UserProfile, error) {
	s.calls++
	s.lastQueried = id
	return s.profileFn(s.calls)
}

func TestResolver_FirstAttemptSuccess(t *testing.T) {
	store := &stubProfileStore{
		profileFn: func(int) (*models.UserProfile, error) {
			return &models.UserProfile{ID: "u1", FullName: "Marie"}, nil
		},
	}
	r := NewResolver(store).WithRetry(5, time.Millisecond)

	profile, err := r.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID != "u1" || profile.FullName != "Marie" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if store.calls != 1 {
		t.Errorf("expected 1 store call, got %d", store.calls)
	}
	if store.lastQueried != "u1" {
		t.Errorf("expected query for u1, got %q", store.lastQueried)
	}
}

func TestResolver_RetriesUntilRowAppears(t *testing.T) {
	store := &stubProfileStore{
		profileFn: func(call int) (*models.UserProfile, error) {
			if call < 3 {
				return nil, ErrNotFound
			}
			return &models.UserProfile{ID: "u1"}, nil
		},
	}
	r := NewResolver(store).WithRetry(5, time.Millisecond)

	profile, err := r.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected a profile")
	}
	if store.calls != 3 {
		t.Errorf("expected 3 store calls, got %d", store.calls)
	}
}

func TestResolver_BoundedRetryTerminates(t *testing.T) {
	store := &stubProfileStore{
		profileFn: func(int) (*models.UserProfile, error) {
			return nil, ErrNotFound
		},
	}
	r := NewResolver(store).WithRetry(5, time.Millisecond)

	profile, err := r.Resolve(context.Background(), "u1")
	if !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
	if profile != nil {
		t.Errorf("no profile may be retained on failure, got %+v", profile)
	}
	// The budget is a hard cap on store calls, not just on sleeps.
	if store.calls != 5 {
		t.Errorf("expected exactly 5 store calls, got %d", store.calls)
	}
}

func TestResolver_NonNotFoundErrorIsNotRetried(t *testing.T) {
	dbDown := errors.New("connection refused")
	store := &stubProfileStore{
		profileFn: func(int) (*models.UserProfile, error) {
			return nil, dbDown
		},
	}
	r := NewResolver(store).WithRetry(5, time.Millisecond)

	_, err := r.Resolve(context.Background(), "u1")
	if !errors.Is(err, dbDown) {
		t.Fatalf("expected the store error, got %v", err)
	}
	if store.calls != 1 {
		t.Errorf("expected 1 store call, got %d", store.calls)
	}
}

func TestResolver_ContextCancelStopsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &stubProfileStore{
		profileFn: func(int) (*models.UserProfile, error) {
			cancel()
			return nil, ErrNotFound
		},
	}
	r := NewResolver(store).WithRetry(5, time.Minute)

	_, err := r.Resolve(ctx, "u1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if store.calls != 1 {
		t.Errorf("expected 1 store call, got %d", store.calls)
	}
}

func TestResolver_EmptyUserID(t *testing.T) {
	store := &stubProfileStore{
		profileFn: func(int) (*models.UserProfile, error) {
			t.Fatal("store must not be called for an empty id")
			return nil, nil
		},
	}
	r := NewResolver(store)

	_, err := r.Resolve(context.Background(), "")
	if !errors.Is(err, ErrEmptyUserID) {
		t.Fatalf("expected ErrEmptyUserID, got %v", err)
	}
}
