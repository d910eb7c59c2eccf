package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/httperr"
	"github.com/theomoutet/coach-portal/internal/middleware"
	"github.com/theomoutet/coach-portal/internal/models"
	"github.com/theomoutet/coach-portal/internal/portal"
	"github.com/theomoutet/coach-portal/internal/validators"
)

type ProfileWriter interface {
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
}

// EmailUpdater changes the authentication email, independently from the
// profile's email column.
type EmailUpdater interface {
	UpdateEmail(ctx context.Context, userID, newEmail string) error
}

type MeHandler struct {
	boot     SessionRegistry
	profiles ProfileWriter
	authSvc  EmailUpdater
	log      zerolog.Logger
}

func NewMeHandler(
	boot SessionRegistry,
	profiles ProfileWriter,
	authSvc EmailUpdater,
	log zerolog.Logger,
) *MeHandler {
	return &MeHandler{
		boot:     boot,
		profiles: profiles,
		authSvc:  authSvc,
		log:      log,
	}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	profile, err := h.boot.ProfileOrResolve(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "profile_not_found", "Profil introuvable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"`
}

// UpdateProfile writes all mutable profile fields in one update call. When
// the email changed, the authentication email is updated in a second,
// independent call; its failure is a partial success reported distinctly,
// with the profile update retained.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	current, err := h.boot.ProfileOrResolve(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "profile_not_found", "Profil introuvable.")
		return
	}

	updated := &models.UserProfile{
		ID:        userID,
		FullName:  req.FullName,
		Email:     validators.Normalize(req.Email),
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Role:      current.Role,
	}

	if err := h.profiles.UpdateProfile(c.Request.Context(), updated); err != nil {
		httperr.Internal(c, "profile_update_failed", "La mise à jour du profil a échoué.")
		return
	}
	h.boot.Invalidate(userID)

	if updated.Email != current.Email {
		if err := h.authSvc.UpdateEmail(c.Request.Context(), userID, updated.Email); err != nil {
			h.log.Error().Err(err).Str("user_id", userID).
				Msg("profile updated but auth email change failed")
			c.JSON(http.StatusOK, gin.H{
				"profile": updated,
				"warning": gin.H{
					"code":    "email_change_failed",
					"message": "Profil mis à jour, mais le changement d'email de connexion a échoué.",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"profile": updated})
}

// GetView resolves the portal shell's view for the current session. The
// invariant check runs here on every request, so a requested dashboard
// collapses to home the moment session or profile is gone.
func (h *MeHandler) GetView(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	requested := portal.ParseView(c.Query("view"))

	profile, err := h.boot.ProfileOrResolve(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"view": portal.ViewHome})
		return
	}

	view := portal.ResolveView(true, profile, requested)
	resp := gin.H{"view": view}
	if view == portal.ViewDashboard {
		resp["dashboard"] = portal.DashboardFor(profile.Role)
	}
	c.JSON(http.StatusOK, resp)
}
