// Package errors builds *echo.HTTPError carrying an ErrorMessage.
//
// echo's HTTPErrorHandler serializes the message as the response body.
package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/opst/aptsales/pkg/api/types/errors"
)

type Option func(*apierr.ErrorMessage)

// WithAdvice tells clients what to do next.
func WithAdvice(advice string) Option {
	return func(m *apierr.ErrorMessage) {
		m.Advice = advice
	}
}

// WithError records the cause. It appears in server logs only.
func WithError(err error) Option {
	return func(m *apierr.ErrorMessage) {
		m.Cause = err
	}
}

func New(code int, reason string, options ...Option) *echo.HTTPError {
	if reason == "" {
		reason = http.StatusText(code)
	}
	msg := apierr.ErrorMessage{Reason: reason}
	for _, o := range options {
		o(&msg)
	}
	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

// NotFound responds 404. reason tells what is missing, like "Client not found".
func NotFound(reason string, options ...Option) *echo.HTTPError {
	return New(http.StatusNotFound, reason, options...)
}

func BadRequest(advice string, err error) *echo.HTTPError {
	return New(http.StatusBadRequest, "bad request", WithAdvice(advice), WithError(err))
}

// BadRequestWithReason responds 400 telling reason.
func BadRequestWithReason(reason string, options ...Option) *echo.HTTPError {
	return New(http.StatusBadRequest, reason, options...)
}

// UnprocessableEntity responds 422 for missing or malformed parameters.
func UnprocessableEntity(advice string, err error) *echo.HTTPError {
	return New(
		http.StatusUnprocessableEntity, "unprocessable entity",
		WithAdvice(advice), WithError(err),
	)
}

func Conflict(reason string, options ...Option) *echo.HTTPError {
	return New(http.StatusConflict, reason, options...)
}

func InternalServerError(err error) *echo.HTTPError {
	return New(
		http.StatusInternalServerError, "unexpected error",
		WithAdvice("ask your system admin."), WithError(err),
	)
}

func Unauthorized(reason string, err error) *echo.HTTPError {
	return New(http.StatusUnauthorized, reason, WithError(err))
}

func Forbidden(reason string, err error) *echo.HTTPError {
	return New(http.StatusForbidden, reason, WithError(err))
}
