// Package guard decides whether a requested view is reachable for the
// current session state. Decisions are pure and re-evaluated on every
// navigation; nothing is cached across role changes.
package guard

import "github.com/orderdesk/console/internal/core/domain"

// State is the access level of the current session.
type State int

const (
	Unauthenticated State = iota
	Employee
	Admin
)

// RouteClass is the protection level a route is registered under.
type RouteClass int

const (
	// Public routes: login, health probes, metrics, API docs.
	Public RouteClass = iota
	// Protected routes require any authenticated session.
	Protected
	// AdminOnly routes (clients management) require the admin role.
	AdminOnly
)

// Decision is the outcome of an access check.
type Decision int

const (
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login view.
	RedirectLogin
	// RedirectHome sends a non-admin away from admin-only views to the
	// default route.
	RedirectHome
)

// StateFor derives the access state from the session's current user.
func StateFor(u *domain.User) State {
	switch {
	case u == nil:
		return Unauthenticated
	case u.IsAdmin():
		return Admin
	default:
		return Employee
	}
}

// Decide applies the transition rules: unauthenticated sessions are sent to
// login for anything protected; authenticated non-admins are sent home from
// admin-only routes; admins pass everywhere.
func Decide(state State, class RouteClass) Decision {
	if class == Public {
		return Allow
	}
	if state == Unauthenticated {
		return RedirectLogin
	}
	if class == AdminOnly && state != Admin {
		return RedirectHome
	}
	return Allow
}
