package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, production bool, handlerErr error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(production)
	e.GET("/boom", func(c echo.Context) error {
		return handlerErr
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{NewValidation("bad input"), http.StatusBadRequest},
		{NewNotFound("missing"), http.StatusNotFound},
		{NewAuth("denied"), http.StatusUnauthorized},
		{NewConflict("DUPLICATE_USER", "dup"), http.StatusBadRequest},
		{NewUpstream("store down", errors.New("timeout")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status())
	}
}

func TestHandlerRendersEnvelope(t *testing.T) {
	rec, body := serve(t, false, NewNotFound("User not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "User not found", body["message"])
}

func TestHandlerRendersConflictCode(t *testing.T) {
	rec, body := serve(t, false, NewConflict("DUPLICATE_USER", "User with this email or mobile number already exists"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_USER", body["errorCode"])
}

func TestHandlerElidesUpstreamInProduction(t *testing.T) {
	rec, body := serve(t, true, NewUpstream("store down", errors.New("dial tcp: timeout")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestHandlerDetailsUpstreamInDevelopment(t *testing.T) {
	rec, body := serve(t, false, NewUpstream("store down", errors.New("dial tcp: timeout")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body["message"], "store down")
	assert.Contains(t, body["message"], "dial tcp")
}

func TestHandlerWrapsUnknownErrors(t *testing.T) {
	rec, body := serve(t, true, errors.New("something broke"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body["message"])
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewUpstream("wrapped", cause)
	assert.ErrorIs(t, err, cause)
}
