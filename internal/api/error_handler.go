package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aoicon/registration-auth/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The user-facing
	// wording intentionally tells registrants what to do next, including
	// whether a registration exists for the identifier.
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return http.StatusBadRequest, "Please enter a valid email or 10-digit mobile number"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "No registration found with this email/mobile number"
	case errors.Is(err, domain.ErrNoChallenge):
		return http.StatusBadRequest, "No OTP found. Please request a new OTP."
	case errors.Is(err, domain.ErrChallengeExpired):
		return http.StatusBadRequest, "OTP has expired. Please request a new OTP."
	case errors.Is(err, domain.ErrCodeMismatch):
		return http.StatusBadRequest, "Invalid OTP. Please try again."
	case errors.Is(err, domain.ErrDeliveryFailed):
		return http.StatusInternalServerError, "Failed to send OTP"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusInternalServerError, "Service temporarily unavailable"
	case errors.Is(err, domain.ErrInvalidSession):
		return http.StatusUnauthorized, "invalid session token"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
