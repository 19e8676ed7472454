package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aoicon/registration-auth/internal/core/domain"
	"github.com/aoicon/registration-auth/internal/core/service"
)

func sessionRequest(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSession_ValidTokenInjectsPrincipal(t *testing.T) {
	sessions := service.NewJWTSessionService("secret", time.Hour)
	principal := domain.SessionPrincipal{
		ID:                 "65f1",
		Name:               "Dr. A Bose",
		Email:              "user@example.com",
		Mobile:             9876543210,
		RegistrationNumber: "AOI-1042",
	}
	token, err := sessions.Issue(principal)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	c, _ := sessionRequest(t, "Bearer "+token)

	var got domain.SessionPrincipal
	next := func(c echo.Context) error {
		got, _ = c.Get(PrincipalKey).(domain.SessionPrincipal)
		return nil
	}
	if err := Session(sessions)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if got != principal {
		t.Fatalf("principal = %+v, want %+v", got, principal)
	}
}

func TestSession_MissingHeader(t *testing.T) {
	sessions := service.NewJWTSessionService("secret", time.Hour)
	c, _ := sessionRequest(t, "")

	err := Session(sessions)(func(echo.Context) error { return nil })(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_MalformedHeader(t *testing.T) {
	sessions := service.NewJWTSessionService("secret", time.Hour)
	c, _ := sessionRequest(t, "Token abc")

	err := Session(sessions)(func(echo.Context) error { return nil })(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_GarbageTokenRejected(t *testing.T) {
	sessions := service.NewJWTSessionService("secret", time.Hour)
	c, _ := sessionRequest(t, "Bearer not.a.jwt")

	err := Session(sessions)(func(echo.Context) error { return nil })(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
