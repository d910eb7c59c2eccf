package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theomoutet/coach-portal/internal/domain/weight"
	"github.com/theomoutet/coach-portal/internal/httperr"
	"github.com/theomoutet/coach-portal/internal/middleware"
	ucclient "github.com/theomoutet/coach-portal/internal/usecase/client"
)

type ClientHandler struct {
	loadDashboard *ucclient.LoadDashboard
	addWeight     *ucclient.AddWeight
}

func NewClientHandler(
	loadDashboard *ucclient.LoadDashboard,
	addWeight *ucclient.AddWeight,
) *ClientHandler {
	return &ClientHandler{
		loadDashboard: loadDashboard,
		addWeight:     addWeight,
	}
}

func (h *ClientHandler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	data, err := h.loadDashboard.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "dashboard_load_failed",
			"Le chargement du tableau de bord a échoué.")
		return
	}

	c.JSON(http.StatusOK, data)
}

type AddWeightRequest struct {
	// Weight is the raw form value: validation applies to the string,
	// before anything touches the store.
	Weight string `json:"weight" binding:"required"`
}

func (h *ClientHandler) AddWeight(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req AddWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	data, err := h.addWeight.Execute(c.Request.Context(), userID, req.Weight)
	if err != nil {
		if errors.Is(err, weight.ErrNotNumeric) ||
			errors.Is(err, weight.ErrNotPositive) ||
			errors.Is(err, weight.ErrTooHigh) {
			httperr.BadRequest(c, "invalid_weight", err.Error())
			return
		}
		httperr.Internal(c, "weight_insert_failed",
			"L'enregistrement du poids a échoué.")
		return
	}

	c.JSON(http.StatusCreated, data)
}
