package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/models"
)

type stubAdminRepo struct {
	clients    []models.UserProfile
	clientsErr error

	apps    []models.Appointment
	appsErr error

	sessions    []models.SessionLog
	sessionsErr error

	invoices    []models.Invoice
	invoicesErr error

	createdInvoices []*models.Invoice
	createErr       error

	fileKeys   map[string]string
	fileKeyErr error

	deletedProfiles []string
	deleteProfErr   error

	deletedInvoices []string
	deleteInvErr    error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{fileKeys: make(map[string]string)}
}

func (r *stubAdminRepo) ClientProfiles(context.Context) ([]models.UserProfile, error) {
	return r.clients, r.clientsErr
}

func (r *stubAdminRepo) DeleteProfile(_ context.Context, id string) error {
	if r.deleteProfErr != nil {
		return r.deleteProfErr
	}
	r.deletedProfiles = append(r.deletedProfiles, id)
	return nil
}

func (r *stubAdminRepo) AllAppointments(context.Context) ([]models.Appointment, error) {
	return r.apps, r.appsErr
}

func (r *stubAdminRepo) SessionLogs(context.Context) ([]models.SessionLog, error) {
	return r.sessions, r.sessionsErr
}

func (r *stubAdminRepo) Invoices(context.Context) ([]models.Invoice, error) {
	return r.invoices, r.invoicesErr
}

func (r *stubAdminRepo) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *inv
	r.createdInvoices = append(r.createdInvoices, &clone)
	return nil
}

func (r *stubAdminRepo) SetInvoiceFileKey(_ context.Context, invoiceID, fileKey string) error {
	if r.fileKeyErr != nil {
		return r.fileKeyErr
	}
	r.fileKeys[invoiceID] = fileKey
	return nil
}

func (r *stubAdminRepo) DeleteInvoice(_ context.Context, id string) error {
	if r.deleteInvErr != nil {
		return r.deleteInvErr
	}
	r.deletedInvoices = append(r.deletedInvoices, id)
	return nil
}

type nopAuditWriter struct{}

func (nopAuditWriter) Log(*string, string, string, *string, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopAuditWriter{}, zerolog.Nop())
}

func overviewApp(month time.Month, price float64, status string) models.Appointment {
	return models.Appointment{
		DateTime: time.Date(2025, month, 10, 9, 0, 0, 0, time.UTC),
		Price:    price,
		Status:   status,
	}
}

func TestLoadOverview_Aggregates(t *testing.T) {
	repo := newStubAdminRepo()
	repo.clients = []models.UserProfile{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	repo.apps = []models.Appointment{
		overviewApp(time.January, 50, "completed"),
		overviewApp(time.January, 50, "pending"),
		overviewApp(time.February, 70, "completed"),
	}
	repo.sessions = []models.SessionLog{{ID: "s1"}}

	uc := NewLoadOverview(repo)
	data, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.TotalRevenue != 170 {
		t.Errorf("total revenue: expected 170, got %v", data.TotalRevenue)
	}
	if data.ClientCount != 3 {
		t.Errorf("client count: expected 3, got %d", data.ClientCount)
	}
	if data.CompletedSessions != 2 {
		t.Errorf("completed sessions: expected 2, got %d", data.CompletedSessions)
	}
	if len(data.MonthlyRevenue) != 2 {
		t.Fatalf("expected 2 monthly groups, got %d", len(data.MonthlyRevenue))
	}
	if data.MonthlyRevenue[0].Month != "janvier 2025" || data.MonthlyRevenue[0].Amount != 100 {
		t.Errorf("group 0: got %+v", data.MonthlyRevenue[0])
	}
	if data.MonthlyRevenue[1].Month != "février 2025" || data.MonthlyRevenue[1].Amount != 70 {
		t.Errorf("group 1: got %+v", data.MonthlyRevenue[1])
	}
	if len(data.Sessions) != 1 {
		t.Errorf("expected 1 session log, got %d", len(data.Sessions))
	}
}

// One failed fetch fails the whole load.
func TestLoadOverview_FailFast(t *testing.T) {
	cases := []struct {
		name string
		prep func(*stubAdminRepo)
	}{
		{"appointments", func(r *stubAdminRepo) { r.appsErr = errors.New("down") }},
		{"clients", func(r *stubAdminRepo) { r.clientsErr = errors.New("down") }},
		{"sessions", func(r *stubAdminRepo) { r.sessionsErr = errors.New("down") }},
	}

	for _, tc := range cases {
		repo := newStubAdminRepo()
		tc.prep(repo)
		uc := NewLoadOverview(repo)

		data, err := uc.Execute(context.Background())
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
		if data != nil {
			t.Errorf("%s: expected no partial data, got %+v", tc.name, data)
		}
	}
}
