package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aoicon/registration-auth/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidIdentifier, http.StatusBadRequest, "valid email or 10-digit mobile"},
		{domain.ErrUserNotFound, http.StatusNotFound, "No registration found"},
		{domain.ErrNoChallenge, http.StatusBadRequest, "request a new OTP"},
		{domain.ErrChallengeExpired, http.StatusBadRequest, "expired"},
		{domain.ErrCodeMismatch, http.StatusBadRequest, "Invalid OTP"},
		{domain.ErrDeliveryFailed, http.StatusInternalServerError, "Failed to send OTP"},
		{domain.ErrStoreUnavailable, http.StatusInternalServerError, "temporarily unavailable"},
		{domain.ErrInvalidSession, http.StatusUnauthorized, "invalid session"},
	}

	for _, tc := range cases {
		e := echo.New()
		e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
		e.GET("/boom", func(echo.Context) error { return tc.err })

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != tc.wantCode {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.wantCode, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.wantMsg) {
			t.Fatalf("%v: body %q does not mention %q", tc.err, rec.Body.String(), tc.wantMsg)
		}
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "odd") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("echo errors keep their code, got %d", rec.Code)
	}
}
