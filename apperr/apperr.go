// Package apperr defines the error taxonomy every handler speaks and the
// centralized HTTP rendering for it.
package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Kind int

const (
	Validation Kind = iota + 1 // malformed or missing input
	NotFound                   // unknown user or product
	Auth                       // bad password, OTP or token
	Conflict                   // duplicate email or mobile
	Upstream                   // store or notification failure
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the taxonomy onto HTTP. Conflict intentionally renders 400,
// matching the reference API contract.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Auth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Kind: Auth, Message: message}
}

func NewConflict(code, message string) *Error {
	return &Error{Kind: Conflict, Code: code, Message: message}
}

func NewUpstream(message string, err error) *Error {
	return &Error{Kind: Upstream, Message: message, Err: err}
}

// HTTPErrorHandler renders every error through the shared response envelope.
// Upstream failures and unclassified errors become a 500 whose message is
// elided in production and detailed otherwise.
func HTTPErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := echo.Map{"error": true, "message": "Internal Server Error"}

		var appErr *Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status()
			if status == http.StatusInternalServerError {
				c.Logger().Error(err)
				if !production {
					body["message"] = appErr.Error()
				}
			} else {
				body["message"] = appErr.Message
				if appErr.Code != "" {
					body["errorCode"] = appErr.Code
				}
			}
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				body["message"] = msg
			}
		default:
			c.Logger().Error(err)
			if !production {
				body["message"] = err.Error()
			}
		}

		if err := c.JSON(status, body); err != nil {
			c.Logger().Error(err)
		}
	}
}
