package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/theomoutet/coach-portal/internal/models"
)

type stubAdminCreds struct {
	deleteErr  error
	deletedIDs []string
}

func (s *stubAdminCreds) DeleteUser(_ context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, userID)
	return nil
}

func TestDeleteClient_RemovesProfileAndCredential(t *testing.T) {
	repo := newStubAdminRepo()
	creds := &stubAdminCreds{}
	uc := NewDeleteClient(repo, creds, newTestDispatcher(), zerolog.Nop())

	if err := uc.Execute(context.Background(), "admin1", "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deletedProfiles) != 1 || repo.deletedProfiles[0] != "c1" {
		t.Errorf("expected profile delete of c1, got %v", repo.deletedProfiles)
	}
	if len(creds.deletedIDs) != 1 || creds.deletedIDs[0] != "c1" {
		t.Errorf("expected credential delete of c1, got %v", creds.deletedIDs)
	}
}

func TestDeleteClient_ProfileDeleteFailureAborts(t *testing.T) {
	repo := newStubAdminRepo()
	repo.deleteProfErr = errors.New("delete failed")
	creds := &stubAdminCreds{}
	uc := NewDeleteClient(repo, creds, newTestDispatcher(), zerolog.Nop())

	if err := uc.Execute(context.Background(), "admin1", "c1"); err == nil {
		t.Fatal("expected an error")
	}
	if len(creds.deletedIDs) != 0 {
		t.Error("credential must not be touched when the profile delete fails")
	}
}

// A surviving credential after a deleted profile is a logged partial
// failure, not a caller-visible error.
func TestDeleteClient_CredentialFailureIsNotFatal(t *testing.T) {
	repo := newStubAdminRepo()
	creds := &stubAdminCreds{deleteErr: errors.New("delete failed")}
	uc := NewDeleteClient(repo, creds, newTestDispatcher(), zerolog.Nop())

	if err := uc.Execute(context.Background(), "admin1", "c1"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(repo.deletedProfiles) != 1 {
		t.Error("profile delete must have happened")
	}
}

func TestFilterClients(t *testing.T) {
	profiles := []models.UserProfile{
		{ID: "c1", FullName: "Marie Dubois", Email: "marie@example.com"},
		{ID: "c2", FullName: "Paul Martin", Email: "paul.martin@example.com"},
		{ID: "c3", FullName: "Sophie Bernard", Email: "sophie@example.com"},
	}

	got := FilterClients(profiles, "martin")
	if len(got) != 1 || got[0].ID != "c2" {
		t.Errorf("expected [c2], got %+v", got)
	}

	got = FilterClients(profiles, "  MARIE ")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("trimmed match: expected [c1], got %+v", got)
	}

	if got := FilterClients(profiles, ""); len(got) != 3 {
		t.Errorf("empty query: expected all, got %d", len(got))
	}
}
