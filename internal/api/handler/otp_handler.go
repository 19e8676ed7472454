package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aoicon/registration-auth/internal/api/metrics"
	"github.com/aoicon/registration-auth/internal/core/domain"
	"github.com/aoicon/registration-auth/internal/core/ports"
)

type OTPHandler struct {
	otpService ports.OTPService
}

func NewOTPHandler(otpService ports.OTPService) *OTPHandler {
	return &OTPHandler{otpService: otpService}
}

type sendOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type sendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Channel string `json:"channel"`
}

type verifyOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	OTP        string `json:"otp"        validate:"required"`
}

type verifyOTPResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    sessionUser `json:"user"`
}

// sessionUser is the claim set as rendered to clients. Mirrors
// domain.SessionPrincipal field for field; certUrl may be empty, which
// clients treat as "certificate not available".
type sessionUser struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Mobile             int64  `json:"mobile"`
	RegistrationNumber string `json:"registrationNumber"`
	CertURL            string `json:"certUrl"`
}

func toSessionUser(p domain.SessionPrincipal) sessionUser {
	return sessionUser{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Mobile:             p.Mobile,
		RegistrationNumber: p.RegistrationNumber,
		CertURL:            p.CertURL,
	}
}

// SendOTP issues and dispatches a one-time passcode.
//
// @Summary      Send a login OTP to a registered email or mobile number
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      sendOTPRequest  true  "Registered identifier"
// @Success      200   {object}  sendOTPResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/send-otp [post]
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email or mobile number is required")
	}

	result, err := h.otpService.Issue(c.Request().Context(), req.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrDeliveryFailed) {
			_, kind := domain.ClassifyIdentifier(req.Identifier)
			metrics.OTPDeliveryFailuresTotal.WithLabelValues(string(kind)).Inc()
		}
		return err
	}

	metrics.OTPIssuedTotal.WithLabelValues(string(result.Channel)).Inc()
	return c.JSON(http.StatusOK, sendOTPResponse{
		Success: true,
		Message: "OTP sent successfully to your " + string(result.Channel),
		Channel: string(result.Channel),
	})
}

// VerifyOTP exchanges a pending code for a session token.
//
// @Summary      Verify an OTP and establish a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Identifier and submitted code"
// @Success      200   {object}  verifyOTPResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/verify-otp [post]
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.OTPVerifyDuration.Observe(time.Since(start).Seconds())
	}()

	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email/mobile and OTP are required")
	}

	// The service compares codes with exact string equality; stray
	// whitespace from copy-paste is normalised here, at the caller.
	result, err := h.otpService.Verify(c.Request().Context(), req.Identifier, strings.TrimSpace(req.OTP))
	if err != nil {
		metrics.OTPVerifyTotal.WithLabelValues(verifyResultLabel(err)).Inc()
		return err
	}

	metrics.OTPVerifyTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, verifyOTPResponse{
		Success: true,
		Token:   result.Token,
		User:    toSessionUser(result.Principal),
	})
}

func verifyResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoChallenge):
		return "no_challenge"
	case errors.Is(err, domain.ErrChallengeExpired):
		return "expired"
	case errors.Is(err, domain.ErrCodeMismatch):
		return "mismatch"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "error"
	}
}
