package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaldrip/ledgerboard/internal/auth"
	ledgerhttp "github.com/mwaldrip/ledgerboard/internal/http"
)

func gateSetup(t *testing.T) (*auth.Sessions, http.Handler) {
	t.Helper()

	sessions := auth.NewSessions("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return sessions, ledgerhttp.AuthGate(sessions)(next)
}

func sessionCookie(t *testing.T, sessions *auth.Sessions) *http.Cookie {
	t.Helper()

	token, err := sessions.Issue(&auth.User{
		ID:    uuid.New(),
		Name:  "User",
		Email: "user@example.com",
	})
	require.NoError(t, err)

	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

func TestAuthGate_DashboardRequiresSession(t *testing.T) {
	_, gate := gateSetup(t)

	r := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	w := httptest.NewRecorder()

	gate.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthGate_DashboardPassesWithSession(t *testing.T) {
	sessions, gate := gateSetup(t)

	r := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	r.AddCookie(sessionCookie(t, sessions))

	w := httptest.NewRecorder()
	gate.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthGate_LoggedInEntryPathsBounceToDashboard(t *testing.T) {
	sessions, gate := gateSetup(t)

	for _, path := range []string{"/", "/login"} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		r.AddCookie(sessionCookie(t, sessions))

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code, "path %s", path)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"), "path %s", path)
	}
}

func TestAuthGate_LoggedOutEntryPathsPass(t *testing.T) {
	_, gate := gateSetup(t)

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()

	gate.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthGate_ExpiredSessionIsLoggedOut(t *testing.T) {
	_, gate := gateSetup(t)

	expired := auth.NewSessions("test-secret", -time.Minute)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(sessionCookie(t, expired))

	w := httptest.NewRecorder()
	gate.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
