package client

import (
	"context"

	"github.com/theomoutet/coach-portal/internal/domain/weight"
	"github.com/theomoutet/coach-portal/internal/models"
)

type Repository interface {
	WeightLogsForClient(ctx context.Context, clientID string) ([]models.WeightLog, error)
	AppointmentsForClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	CreateWeightLog(ctx context.Context, log *models.WeightLog) error
}

type DashboardData struct {
	WeightLogs   []models.WeightLog   `json:"weight_logs"`
	Appointments []models.Appointment `json:"appointments"`
	Summary      *weight.Summary      `json:"summary"`
}

// LoadDashboard fetches the client's weight series and appointments. The two
// fetches are independent and issued concurrently, but awaited jointly:
// if either fails the whole load fails and no partial data is returned.
type LoadDashboard struct {
	repo Repository
}

func NewLoadDashboard(repo Repository) *LoadDashboard {
	return &LoadDashboard{repo: repo}
}

func (uc *LoadDashboard) Execute(
	ctx context.Context,
	clientID string,
) (*DashboardData, error) {

	var (
		logs []models.WeightLog
		apps []models.Appointment
	)

	errs := make(chan error, 2)

	go func() {
		var err error
		logs, err = uc.repo.WeightLogsForClient(ctx, clientID)
		errs <- err
	}()

	go func() {
		var err error
		apps, err = uc.repo.AppointmentsForClient(ctx, clientID)
		errs <- err
	}()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return &DashboardData{
		WeightLogs:   logs,
		Appointments: apps,
		Summary:      weight.Summarize(logs),
	}, nil
}
