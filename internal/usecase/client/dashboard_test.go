package client

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/models"
)

type stubRepo struct {
	logs    []models.WeightLog
	logsErr error

	apps    []models.Appointment
	appsErr error

	created   []*models.WeightLog
	createErr error
}

func (r *stubRepo) WeightLogsForClient(_ context.Context, clientID string) ([]models.WeightLog, error) {
	if r.logsErr != nil {
		return nil, r.logsErr
	}
	return r.logs, nil
}

func (r *stubRepo) AppointmentsForClient(_ context.Context, clientID string) ([]models.Appointment, error) {
	if r.appsErr != nil {
		return nil, r.appsErr
	}
	return r.apps, nil
}

func (r *stubRepo) CreateWeightLog(_ context.Context, log *models.WeightLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *log
	r.created = append(r.created, &clone)
	r.logs = append(r.logs, clone)
	return nil
}

type nopAuditWriter struct{}

func (nopAuditWriter) Log(*string, string, string, *string, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopAuditWriter{}, zerolog.Nop())
}

func TestLoadDashboard_Success(t *testing.T) {
	repo := &stubRepo{
		logs: []models.WeightLog{
			{Weight: 80, Date: "2025-01-01"},
			{Weight: 78, Date: "2025-02-01"},
		},
		apps: []models.Appointment{{ID: "a1"}},
	}
	uc := NewLoadDashboard(repo)

	data, err := uc.Execute(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.WeightLogs) != 2 {
		t.Errorf("expected 2 weight logs, got %d", len(data.WeightLogs))
	}
	if len(data.Appointments) != 1 {
		t.Errorf("expected 1 appointment, got %d", len(data.Appointments))
	}
	if data.Summary == nil {
		t.Fatal("expected a summary for a non-empty series")
	}
	if data.Summary.Current != 78 {
		t.Errorf("summary current: expected 78, got %v", data.Summary.Current)
	}
}

func TestLoadDashboard_EmptySeriesHasNoSummary(t *testing.T) {
	uc := NewLoadDashboard(&stubRepo{})

	data, err := uc.Execute(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Summary != nil {
		t.Errorf("expected nil summary, got %+v", data.Summary)
	}
}

// The two fetches are all-or-nothing: one failure fails the load and no
// partial data is returned.
func TestLoadDashboard_FailsWhenWeightFetchFails(t *testing.T) {
	repo := &stubRepo{
		logsErr: errors.New("weights unavailable"),
		apps:    []models.Appointment{{ID: "a1"}},
	}
	uc := NewLoadDashboard(repo)

	data, err := uc.Execute(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if data != nil {
		t.Errorf("expected no partial data, got %+v", data)
	}
}

func TestLoadDashboard_FailsWhenAppointmentFetchFails(t *testing.T) {
	repo := &stubRepo{
		logs:    []models.WeightLog{{Weight: 80}},
		appsErr: errors.New("appointments unavailable"),
	}
	uc := NewLoadDashboard(repo)

	data, err := uc.Execute(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if data != nil {
		t.Errorf("expected no partial data, got %+v", data)
	}
}
