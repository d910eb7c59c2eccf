package portal

import (
	"testing"

	"github.com/theomoutet/coach-portal/internal/models"
)

func TestParseView(t *testing.T) {
	cases := []struct {
		raw  string
		want View
	}{
		{"dashboard", ViewDashboard},
		{"profile", ViewProfile},
		{"home", ViewHome},
		{"", ViewHome},
		{"settings", ViewHome},
	}

	for _, tc := range cases {
		if got := ParseView(tc.raw); got != tc.want {
			t.Errorf("ParseView(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestResolveView_RequiresSessionAndProfile(t *testing.T) {
	profile := &models.UserProfile{ID: "u1", Role: models.RoleClient}

	cases := []struct {
		name          string
		authenticated bool
		profile       *models.UserProfile
		requested     View
		want          View
	}{
		{"no session", false, profile, ViewDashboard, ViewHome},
		{"no profile", true, nil, ViewDashboard, ViewHome},
		{"neither", false, nil, ViewProfile, ViewHome},
		{"both, dashboard", true, profile, ViewDashboard, ViewDashboard},
		{"both, profile", true, profile, ViewProfile, ViewProfile},
		{"both, home", true, profile, ViewHome, ViewHome},
	}

	for _, tc := range cases {
		if got := ResolveView(tc.authenticated, tc.profile, tc.requested); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestDashboardFor(t *testing.T) {
	if got := DashboardFor(models.RoleAdmin); got != DashboardAdmin {
		t.Errorf("admin: expected %q, got %q", DashboardAdmin, got)
	}
	if got := DashboardFor(models.RoleClient); got != DashboardClient {
		t.Errorf("client: expected %q, got %q", DashboardClient, got)
	}
}
