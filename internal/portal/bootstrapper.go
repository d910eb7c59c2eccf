package portal

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/auth"
	"github.com/theomoutet/coach-portal/internal/models"
)

// SessionAuditStore records the logout audit trail.
type SessionAuditStore interface {
	LastWeight(ctx context.Context, clientID string) (*float64, error)
	RecordLogout(ctx context.Context, log *models.SessionLog) error
}

type sessionState struct {
	profile *models.UserProfile
}

// Bootstrapper keeps the live session registry in step with the auth
// collaborator. It subscribes to session-change events for its whole
// lifetime: a sign-in resolves the profile before the session is considered
// ready, a sign-out clears the entry and writes the logout audit record.
//
// Transitions for the same user are serialized by the single event loop, so
// there is never more than one in-flight profile resolution per transition.
type Bootstrapper struct {
	feed     *auth.Feed
	resolver *Resolver
	sessions SessionAuditStore
	log      zerolog.Logger

	mu    sync.RWMutex
	state map[string]sessionState

	unsubscribe func()
	done        chan struct{}
}

func NewBootstrapper(feed *auth.Feed, resolver *Resolver, sessions SessionAuditStore, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{
		feed:     feed,
		resolver: resolver,
		sessions: sessions,
		log:      log,
		state:    make(map[string]sessionState),
		done:     make(chan struct{}),
	}
}

// Start subscribes to the event feed and runs until Stop.
func (b *Bootstrapper) Start(ctx context.Context) {
	events, cancel := b.feed.Subscribe()
	b.unsubscribe = cancel

	go func() {
		defer close(b.done)
		for ev := range events {
			b.handle(ctx, ev)
		}
	}()
}

// Stop releases the subscription and waits for the loop to drain.
func (b *Bootstrapper) Stop() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		<-b.done
	}
}

func (b *Bootstrapper) handle(ctx context.Context, ev auth.Event) {
	switch ev.Type {
	case auth.EventSignedIn:
		profile, err := b.resolver.Resolve(ctx, ev.UserID)
		if err != nil {
			// No stale profile may be retained: the session simply never
			// becomes ready and the view layer falls back to home.
			b.log.Error().Err(err).Str("user_id", ev.UserID).Msg("profile resolution failed")
			b.clear(ev.UserID)
			return
		}
		b.mu.Lock()
		b.state[ev.UserID] = sessionState{profile: profile}
		b.mu.Unlock()

	case auth.EventSignedOut:
		b.recordLogout(ctx, ev)
		b.clear(ev.UserID)
	}
}

func (b *Bootstrapper) recordLogout(ctx context.Context, ev auth.Event) {
	last, err := b.sessions.LastWeight(ctx, ev.UserID)
	if err != nil {
		b.log.Error().Err(err).Str("user_id", ev.UserID).Msg("last weight lookup failed")
	}

	entry := &models.SessionLog{
		ID:         uuid.NewString(),
		UserID:     ev.UserID,
		LogoutTime: ev.At,
		LastWeight: last,
	}
	if err := b.sessions.RecordLogout(ctx, entry); err != nil {
		b.log.Error().Err(err).Str("user_id", ev.UserID).Msg("logout audit write failed")
	}
}

func (b *Bootstrapper) clear(userID string) {
	b.mu.Lock()
	delete(b.state, userID)
	b.mu.Unlock()
}

// Profile returns the resolved profile for a live session, or nil when the
// session is gone or never became ready.
func (b *Bootstrapper) Profile(userID string) *models.UserProfile {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if st, ok := b.state[userID]; ok {
		return st.profile
	}
	return nil
}

// ProfileOrResolve serves the registry entry when present and falls back to
// a direct resolution (covers sessions issued before a restart). A resolved
// fallback is cached.
func (b *Bootstrapper) ProfileOrResolve(ctx context.Context, userID string) (*models.UserProfile, error) {
	if p := b.Profile(userID); p != nil {
		return p, nil
	}

	profile, err := b.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.state[userID] = sessionState{profile: profile}
	b.mu.Unlock()
	return profile, nil
}

// Invalidate drops a cached profile so the next lookup re-resolves, e.g.
// after a profile edit.
func (b *Bootstrapper) Invalidate(userID string) {
	b.clear(userID)
}
