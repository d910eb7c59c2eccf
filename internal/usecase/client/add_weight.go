package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/domain/weight"
	"github.com/theomoutet/coach-portal/internal/models"
)

// AddWeight validates and appends a measurement, then reloads the whole
// dashboard so derived statistics are recomputed from the authoritative
// store rather than patched incrementally.
type AddWeight struct {
	repo   Repository
	reload *LoadDashboard
	audit  *audit.Dispatcher
}

func NewAddWeight(repo Repository, reload *LoadDashboard, auditDisp *audit.Dispatcher) *AddWeight {
	return &AddWeight{
		repo:   repo,
		reload: reload,
		audit:  auditDisp,
	}
}

// Execute rejects invalid input before any store call. Raw is the untouched
// form value; validation errors carry the user-facing message.
func (uc *AddWeight) Execute(
	ctx context.Context,
	clientID string,
	raw string,
) (*DashboardData, error) {

	value, err := weight.Parse(raw)
	if err != nil {
		return nil, err
	}

	entry := &models.WeightLog{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Weight:   value,
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := uc.repo.CreateWeightLog(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "weight_logged",
		Entity:   "weight_log",
		EntityID: &entry.ID,
	})

	return uc.reload.Execute(ctx, clientID)
}
