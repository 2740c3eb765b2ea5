package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voguevault/voguevault-backend-go/apperr"
	"github.com/voguevault/voguevault-backend-go/utils"
)

func invoke(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return c, Auth(next)(c)
}

func requireAuthError(t *testing.T, err error) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.Auth, appErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status())
}

func TestAuthMissingHeader(t *testing.T) {
	_, err := invoke(t, "")
	requireAuthError(t, err)
}

func TestAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{
		"Bearer",
		"Basic abc123",
		"Bearer one two",
	} {
		_, err := invoke(t, header)
		requireAuthError(t, err)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := invoke(t, "Bearer not-a-real-token")
	requireAuthError(t, err)
}

func TestAuthTokenSignedWithOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token, err := utils.GenerateToken("alice@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	_, err = invoke(t, "Bearer "+token)
	requireAuthError(t, err)
}

func TestAuthValidTokenSetsUsername(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("alice@example.com")
	require.NoError(t, err)

	c, err := invoke(t, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", c.Get(UsernameKey))
}
