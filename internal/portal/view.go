package portal

import "github.com/theomoutet/coach-portal/internal/models"

// View is the portal shell's top-level screen.
type View string

const (
	ViewHome      View = "home"
	ViewDashboard View = "dashboard"
	ViewProfile   View = "profile"
)

// Dashboard is the role-selected dashboard variant. The set is closed:
// every role maps to exactly one variant.
type Dashboard string

const (
	DashboardAdmin  Dashboard = "admin"
	DashboardClient Dashboard = "client"
)

// ParseView maps a raw request value onto the closed view set, defaulting
// to home.
func ParseView(raw string) View {
	switch View(raw) {
	case ViewDashboard:
		return ViewDashboard
	case ViewProfile:
		return ViewProfile
	default:
		return ViewHome
	}
}

// ResolveView enforces the navigation invariant at render time, not merely
// at the moment of transition: without both a session and a profile, the
// only reachable view is home. A stale dashboard view cannot survive a
// concurrent logout.
func ResolveView(authenticated bool, profile *models.UserProfile, requested View) View {
	if !authenticated || profile == nil {
		return ViewHome
	}

	switch requested {
	case ViewDashboard, ViewProfile:
		return requested
	default:
		return ViewHome
	}
}

// DashboardFor selects the dashboard variant by profile role.
func DashboardFor(role models.Role) Dashboard {
	if role == models.RoleAdmin {
		return DashboardAdmin
	}
	return DashboardClient
}
