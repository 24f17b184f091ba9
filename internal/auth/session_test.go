package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaldrip/ledgerboard/internal/auth"
)

func testUser() *auth.User {
	return &auth.User{
		ID:    uuid.New(),
		Name:  "User",
		Email: "user@example.com",
	}
}

func TestSessions_RoundTrip(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)
	user := testUser()

	token, err := sessions.Issue(user)
	require.NoError(t, err)

	claims, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestSessions_WrongSecret(t *testing.T) {
	token, err := auth.NewSessions("secret-a", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = auth.NewSessions("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestSessions_Expired(t *testing.T) {
	sessions := auth.NewSessions("test-secret", -time.Minute)

	token, err := sessions.Issue(testUser())
	require.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.Error(t, err)
}

func TestSessions_FromRequest(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	token, err := sessions.Issue(testUser())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	assert.Nil(t, sessions.FromRequest(r), "no cookie means no session")

	r.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})

	claims := sessions.FromRequest(r)
	require.NotNil(t, claims)
	assert.Equal(t, "user@example.com", claims.Email)

	garbage := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	garbage.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "not-a-token"})
	assert.Nil(t, sessions.FromRequest(garbage))
}
