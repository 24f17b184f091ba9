package http

import (
	"net/http"
	"strings"

	"github.com/mwaldrip/ledgerboard/internal/auth"
)

// AuthGate guards the protected dashboard prefix before any handler
// runs: requests under /dashboard without a session are diverted to
// the login view, and logged-in requests to the public entry paths are
// diverted to the dashboard root.
func AuthGate(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loggedIn := sessions.FromRequest(r) != nil
			onDashboard := strings.HasPrefix(r.URL.Path, "/dashboard")

			if onDashboard {
				if !loggedIn {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}

				next.ServeHTTP(w, r)

				return
			}

			if loggedIn && isEntryPath(r.URL.Path) {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isEntryPath reports whether the path is a public entry view that a
// logged-in user has no business staying on.
func isEntryPath(path string) bool {
	return path == "/" || path == "/login"
}
