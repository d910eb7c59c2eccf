package admin

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/models"
)

// Credentials is the slice of the auth collaborator the admin flows need.
type Credentials interface {
	DeleteUser(ctx context.Context, userID string) error
}

// DeleteClient removes the profile row, then the credential. Like every
// cross-system write here the pair is not atomic; a surviving credential is
// logged as a distinct partial failure rather than ignored.
type DeleteClient struct {
	repo  Repository
	creds Credentials
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewDeleteClient(
	repo Repository,
	creds Credentials,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		creds: creds,
		audit: auditDisp,
		log:   log,
	}
}

func (uc *DeleteClient) Execute(ctx context.Context, actorID, clientID string) error {
	if err := uc.repo.DeleteProfile(ctx, clientID); err != nil {
		return err
	}

	if err := uc.creds.DeleteUser(ctx, clientID); err != nil {
		uc.log.Error().Err(err).Str("client_id", clientID).
			Msg("profile deleted but credential removal failed")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "client_deleted",
		Entity:   "user_profile",
		EntityID: &clientID,
	})
	return nil
}

// FilterClients applies the in-memory, case-insensitive substring search
// over name and email, without re-querying the store.
func FilterClients(profiles []models.UserProfile, query string) []models.UserProfile {
	if query == "" {
		return profiles
	}

	out := make([]models.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		if matchesQuery(query, p.FullName, p.Email) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
