package admin

import (
	"context"

	"github.com/theomoutet/coach-portal/internal/domain/revenue"
	"github.com/theomoutet/coach-portal/internal/models"
)

type Repository interface {
	ClientProfiles(ctx context.Context) ([]models.UserProfile, error)
	DeleteProfile(ctx context.Context, id string) error

	AllAppointments(ctx context.Context) ([]models.Appointment, error)
	SessionLogs(ctx context.Context) ([]models.SessionLog, error)

	Invoices(ctx context.Context) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, inv *models.Invoice) error
	SetInvoiceFileKey(ctx context.Context, invoiceID, fileKey string) error
	DeleteInvoice(ctx context.Context, id string) error
}

type OverviewData struct {
	TotalRevenue      float64                   `json:"total_revenue"`
	ClientCount       int                       `json:"client_count"`
	CompletedSessions int                       `json:"completed_sessions"`
	MonthlyRevenue    []revenue.MonthlyRevenue  `json:"monthly_revenue"`
	Appointments      []models.Appointment      `json:"appointments"`
	Sessions          []models.SessionLog       `json:"sessions"`
}

// LoadOverview fetches the three admin data sets concurrently and derives
// the revenue figures from the appointment rows on every call. The joint
// fetch is all-or-nothing: one failure fails the whole load.
type LoadOverview struct {
	repo Repository
}

func NewLoadOverview(repo Repository) *LoadOverview {
	return &LoadOverview{repo: repo}
}

func (uc *LoadOverview) Execute(ctx context.Context) (*OverviewData, error) {
	var (
		apps     []models.Appointment
		clients  []models.UserProfile
		sessions []models.SessionLog
	)

	errs := make(chan error, 3)

	go func() {
		var err error
		apps, err = uc.repo.AllAppointments(ctx)
		errs <- err
	}()

	go func() {
		var err error
		clients, err = uc.repo.ClientProfiles(ctx)
		errs <- err
	}()

	go func() {
		var err error
		sessions, err = uc.repo.SessionLogs(ctx)
		errs <- err
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return &OverviewData{
		TotalRevenue:      revenue.Total(apps),
		ClientCount:       len(clients),
		CompletedSessions: revenue.CompletedCount(apps),
		MonthlyRevenue:    revenue.Monthly(apps),
		Appointments:      apps,
		Sessions:          sessions,
	}, nil
}
