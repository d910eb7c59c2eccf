package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/auth"
	"github.com/theomoutet/coach-portal/internal/httperr"
	"github.com/theomoutet/coach-portal/internal/middleware"
	"github.com/theomoutet/coach-portal/internal/models"
	"github.com/theomoutet/coach-portal/internal/usecase/account"
	"github.com/theomoutet/coach-portal/internal/validators"
)

// Upstream auth failures are re-mapped to the localized inline messages the
// forms display.
const (
	msgInvalidCredentials = "Email ou mot de passe incorrect"
	msgAdminOnly          = "Accès réservé à l'administrateur"
)

// SessionService is the slice of the auth collaborator the handlers drive.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	SignOut(ctx context.Context, token string) error
}

// SessionRegistry resolves profiles for live sessions.
type SessionRegistry interface {
	ProfileOrResolve(ctx context.Context, userID string) (*models.UserProfile, error)
	Invalidate(userID string)
}

type AuthHandler struct {
	svc       SessionService
	boot      SessionRegistry
	createAcc *account.CreateAccount
	audit     *audit.Dispatcher
	log       zerolog.Logger
}

func NewAuthHandler(
	svc SessionService,
	boot SessionRegistry,
	createAcc *account.CreateAccount,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		svc:       svc,
		boot:      boot,
		createAcc: createAcc,
		audit:     auditDisp,
		log:       log,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	session, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", msgInvalidCredentials)
			return
		}
		httperr.Internal(c, "login_failed", "Une erreur est survenue. Veuillez réessayer.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AdminLogin performs the gated variant: authenticate, then verify the
// admin role. A non-admin credential has its freshly issued session
// invalidated before the response, so it never reaches the admin view,
// even transiently.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	session, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", msgInvalidCredentials)
			return
		}
		httperr.Internal(c, "login_failed", "Une erreur est survenue. Veuillez réessayer.")
		return
	}

	profile, err := h.boot.ProfileOrResolve(c.Request.Context(), session.UserID)
	if err != nil || profile == nil || profile.Role != models.RoleAdmin {
		if soErr := h.svc.SignOut(c.Request.Context(), session.Token); soErr != nil {
			h.log.Error().Err(soErr).Str("user_id", session.UserID).
				Msg("failed to invalidate non-admin session")
		}
		h.audit.Dispatch(audit.Event{
			UserID: &session.UserID,
			Action: "admin_login_denied",
			Entity: "session",
		})
		httperr.Forbidden(c, "authorization_denied", msgAdminOnly)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.Normalize(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain",
			"Le domaine de l'adresse email ne semble pas valide.")
		return
	}

	profile, err := h.createAcc.Execute(c.Request.Context(), account.CreateInput{
		FullName: req.FullName,
		Email:    email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     models.RoleClient,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			httperr.BadRequest(c, "email_taken", "Cette adresse email est déjà utilisée.")
			return
		}
		if httperr.IsBusiness(err, "orphaned_credential") {
			httperr.Internal(c, "orphaned_credential",
				"Le compte n'a pas pu être créé entièrement. Contactez le support.")
			return
		}
		httperr.Internal(c, "signup_failed", "La création du compte a échoué.")
		return
	}

	session, err := h.svc.SignIn(c.Request.Context(), email, req.Password)
	if err != nil {
		// Account exists; the user can still sign in manually.
		c.JSON(http.StatusCreated, gin.H{"profile": profile})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile": profile,
		"session": session,
	})
}

// Logout revokes the presented session. The session-change event it emits
// drives the logout audit record.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.MustGet(middleware.ContextToken).(string)

	if err := h.svc.SignOut(c.Request.Context(), token); err != nil {
		httperr.Internal(c, "logout_failed",
			"Une erreur est survenue lors de la déconnexion. Veuillez réessayer.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}
