package account

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/httperr"
	"github.com/theomoutet/coach-portal/internal/models"
)

// Credentials is the slice of the auth collaborator this use case needs.
type Credentials interface {
	SignUp(ctx context.Context, email, password string) (*models.AuthUser, error)
	DeleteUser(ctx context.Context, userID string) error
}

type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
}

type CreateInput struct {
	FullName  string
	Email     string
	Password  string
	Phone     string
	Address   string
	BirthDate string
	Role      models.Role
}

// CreateAccount is a two-phase write across two systems: provision the
// authenticatable credential, then insert the dependent profile row. The
// phases are not atomic; a failed second phase triggers a compensating
// credential delete, and a failed compensation is reported as its own
// distinct state instead of silently leaving an orphan.
type CreateAccount struct {
	creds    Credentials
	profiles ProfileStore
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewCreateAccount(
	creds Credentials,
	profiles ProfileStore,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *CreateAccount {
	return &CreateAccount{
		creds:    creds,
		profiles: profiles,
		audit:    auditDisp,
		log:      log,
	}
}

func (uc *CreateAccount) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.UserProfile, error) {

	role := in.Role
	if role == "" {
		role = models.RoleClient
	}

	user, err := uc.creds.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:        user.ID,
		FullName:  in.FullName,
		Email:     user.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		BirthDate: in.BirthDate,
		Role:      role,
	}

	if err := uc.profiles.CreateProfile(ctx, profile); err != nil {
		if delErr := uc.creds.DeleteUser(ctx, user.ID); delErr != nil {
			uc.log.Error().
				Err(delErr).
				Str("user_id", user.ID).
				Str("email", user.Email).
				Msg("credential compensation failed, orphaned credential left behind")
			return nil, httperr.ErrBusiness("orphaned_credential")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "account_created",
		Entity:   "user_profile",
		EntityID: &profile.ID,
		Metadata: map[string]string{"role": string(role)},
	})

	return profile, nil
}
