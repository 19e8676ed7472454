package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aoicon/registration-auth/internal/core/domain"
	"github.com/aoicon/registration-auth/internal/core/ports"
)

type stubOTPService struct {
	issueFn  func(ctx context.Context, identifier string) (*ports.IssueResult, error)
	verifyFn func(ctx context.Context, identifier, code string) (*ports.VerifyResult, error)
}

func (s *stubOTPService) Issue(ctx context.Context, identifier string) (*ports.IssueResult, error) {
	return s.issueFn(ctx, identifier)
}

func (s *stubOTPService) Verify(ctx context.Context, identifier, code string) (*ports.VerifyResult, error) {
	return s.verifyFn(ctx, identifier, code)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOTPHandler_SendOTP_Success(t *testing.T) {
	stub := &stubOTPService{
		issueFn: func(ctx context.Context, identifier string) (*ports.IssueResult, error) {
			if identifier != "user@example.com" {
				t.Fatalf("unexpected identifier: %s", identifier)
			}
			return &ports.IssueResult{Channel: domain.IdentifierEmail}, nil
		},
	}
	h := NewOTPHandler(stub)

	c, rec := postJSON(newEcho(), "/api/auth/send-otp", `{"identifier":"user@example.com"}`)
	if err := h.SendOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["success"] != true || resp["channel"] != "email" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "email") {
		t.Fatalf("message should name the channel: %v", resp["message"])
	}
	if _, leaked := resp["otp"]; leaked {
		t.Fatalf("response must not echo the code")
	}
}

func TestOTPHandler_SendOTP_MissingIdentifier(t *testing.T) {
	h := NewOTPHandler(&stubOTPService{})

	c, _ := postJSON(newEcho(), "/api/auth/send-otp", `{}`)
	err := h.SendOTP(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOTPHandler_SendOTP_PropagatesDomainError(t *testing.T) {
	stub := &stubOTPService{
		issueFn: func(ctx context.Context, identifier string) (*ports.IssueResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewOTPHandler(stub)

	c, _ := postJSON(newEcho(), "/api/auth/send-otp", `{"identifier":"ghost@example.com"}`)
	if err := h.SendOTP(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestOTPHandler_VerifyOTP_Success(t *testing.T) {
	principal := domain.SessionPrincipal{
		ID:                 "65f1",
		Name:               "Dr. A Bose",
		Email:              "user@example.com",
		Mobile:             9876543210,
		RegistrationNumber: "AOI-1042",
		CertURL:            "",
	}
	stub := &stubOTPService{
		verifyFn: func(ctx context.Context, identifier, code string) (*ports.VerifyResult, error) {
			if code != "123456" {
				t.Fatalf("expected trimmed code, got %q", code)
			}
			return &ports.VerifyResult{Token: "signed-token", Principal: principal}, nil
		},
	}
	h := NewOTPHandler(stub)

	// Code arrives with copy-paste whitespace; handler normalises before
	// the exact-equality comparison downstream.
	c, rec := postJSON(newEcho(), "/api/auth/verify-otp", `{"identifier":"user@example.com","otp":" 123456 "}`)
	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID                 string `json:"id"`
			Name               string `json:"name"`
			Email              string `json:"email"`
			Mobile             int64  `json:"mobile"`
			RegistrationNumber string `json:"registrationNumber"`
			CertURL            string `json:"certUrl"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.Token != "signed-token" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.User.RegistrationNumber != "AOI-1042" || resp.User.Mobile != 9876543210 || resp.User.Name != "Dr. A Bose" {
		t.Fatalf("claims missing from response: %+v", resp.User)
	}
}

func TestOTPHandler_VerifyOTP_MissingFields(t *testing.T) {
	h := NewOTPHandler(&stubOTPService{})

	c, _ := postJSON(newEcho(), "/api/auth/verify-otp", `{"identifier":"user@example.com"}`)
	err := h.VerifyOTP(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOTPHandler_VerifyOTP_PropagatesDomainError(t *testing.T) {
	for _, want := range []error{domain.ErrNoChallenge, domain.ErrChallengeExpired, domain.ErrCodeMismatch} {
		stub := &stubOTPService{
			verifyFn: func(ctx context.Context, identifier, code string) (*ports.VerifyResult, error) {
				return nil, want
			},
		}
		h := NewOTPHandler(stub)

		c, _ := postJSON(newEcho(), "/api/auth/verify-otp", `{"identifier":"9876543210","otp":"000000"}`)
		if err := h.VerifyOTP(c); !errors.Is(err, want) {
			t.Fatalf("expected %v to propagate, got %v", want, err)
		}
	}
}
