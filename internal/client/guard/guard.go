// Package guard implements the client-side route protection boundary as a
// pure function from (session snapshot, target route) to an allow/redirect
// decision. It makes no network calls; a stale or tampered snapshot can allow
// navigation the server will subsequently reject, so the server-side gates
// remain the authority and this is a UX convenience only.
package guard

import "github.com/tahadev/portfolio/internal/client/session"

// Route identifies a navigable area of the client.
type Route string

const (
	RouteRoot  Route = "/"
	RouteLogin Route = "/login"
	RouteAdmin Route = "/admin"
)

// Decision is the outcome of a guard check. When Allow is false, RedirectTo
// names the route the caller should replace the current location with, so
// back-navigation does not return to the guarded area.
type Decision struct {
	Allow      bool
	RedirectTo Route
}

// Decide evaluates whether the session may enter the target route.
//
//   - Admin routes require a snapshot with the admin role; anything else
//     redirects to the login route.
//   - The login route with an existing session redirects to that session's
//     home: admin area for admins, site root otherwise.
//   - All other routes are public.
//
// A nil snapshot means anonymous.
func Decide(snap *session.Snapshot, target Route) Decision {
	switch target {
	case RouteAdmin:
		if snap.IsAdmin() {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: RouteLogin}
	case RouteLogin:
		if snap != nil {
			return Decision{RedirectTo: Home(snap)}
		}
		return Decision{Allow: true}
	default:
		return Decision{Allow: true}
	}
}

// Home returns the post-login destination for a session: admins land in the
// admin area, everyone else on the site root.
func Home(snap *session.Snapshot) Route {
	if snap.IsAdmin() {
		return RouteAdmin
	}
	return RouteRoot
}
