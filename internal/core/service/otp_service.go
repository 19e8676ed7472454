package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aoicon/registration-auth/internal/core/domain"
	"github.com/aoicon/registration-auth/internal/core/ports"
)

// otpTTL is the challenge validity window, fixed at generation time and not
// renewed on retry.
const otpTTL = 10 * time.Minute

// OTPService implements OTP issuance and verification. Each call is a
// stateless request-handling unit; the user record in the repository is the
// only shared mutable state.
type OTPService struct {
	repo    ports.UserRepository
	email   ports.EmailSender
	sms     ports.SMSSender
	session ports.SessionService
	logger  zerolog.Logger
	now     func() time.Time
}

func NewOTPService(repo ports.UserRepository, email ports.EmailSender, sms ports.SMSSender, session ports.SessionService, logger zerolog.Logger) *OTPService {
	return &OTPService{
		repo:    repo,
		email:   email,
		sms:     sms,
		session: session,
		logger:  logger,
		now:     time.Now,
	}
}

// Issue classifies the identifier, locates the registration, persists a
// fresh challenge (replacing any prior one) and dispatches the code over
// the channel matching the identifier. The challenge stays persisted even
// when dispatch fails; re-issuing overwrites it.
func (s *OTPService) Issue(ctx context.Context, identifier string) (*ports.IssueResult, error) {
	id, kind := domain.ClassifyIdentifier(identifier)
	if kind == domain.IdentifierInvalid {
		return nil, domain.ErrInvalidIdentifier
	}

	user, err := s.findUser(ctx, id, kind)
	if err != nil {
		return nil, err
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}
	challenge := domain.PendingChallenge{
		Code:      code,
		ExpiresAt: s.now().UTC().Add(otpTTL),
	}

	if err := s.repo.SetChallenge(ctx, user.ID, challenge); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to persist otp challenge")
		return nil, err
	}

	switch kind {
	case domain.IdentifierEmail:
		err = s.email.SendOTP(ctx, user.Email, code)
	case domain.IdentifierMobile:
		err = s.sms.SendOTP(ctx, id, code)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Str("channel", string(kind)).Msg("otp dispatch failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("channel", string(kind)).Msg("otp issued")
	return &ports.IssueResult{Channel: kind}, nil
}

// Verify checks the submitted code against the pending challenge and, on an
// exact match, consumes the challenge and establishes a session. Consumption
// is a single conditional clear in the repository, so two concurrent calls
// with the same correct code cannot both succeed.
func (s *OTPService) Verify(ctx context.Context, identifier, code string) (*ports.VerifyResult, error) {
	id, kind := domain.ClassifyIdentifier(identifier)
	if kind == domain.IdentifierInvalid {
		return nil, domain.ErrInvalidIdentifier
	}

	user, err := s.findUser(ctx, id, kind)
	if err != nil {
		return nil, err
	}

	challenge := user.Challenge
	if challenge == nil {
		return nil, domain.ErrNoChallenge
	}
	if challenge.Expired(s.now().UTC()) {
		// Stale challenge stays in place; only re-issuance replaces it.
		return nil, domain.ErrChallengeExpired
	}
	if challenge.Code != code {
		return nil, domain.ErrCodeMismatch
	}

	cleared, err := s.repo.ClearChallengeIfMatches(ctx, user.ID, code)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to consume otp challenge")
		return nil, err
	}
	if !cleared {
		// A concurrent verify consumed it between our read and the clear.
		return nil, domain.ErrNoChallenge
	}

	principal := domain.PrincipalFromRecord(user)
	token, err := s.session.Issue(principal)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("registration_number", principal.RegistrationNumber).Msg("otp verified, session established")
	return &ports.VerifyResult{Token: token, Principal: principal}, nil
}

func (s *OTPService) findUser(ctx context.Context, id string, kind domain.IdentifierKind) (*domain.UserRecord, error) {
	if kind == domain.IdentifierEmail {
		return s.repo.FindByEmail(ctx, id)
	}
	mobile, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidIdentifier
	}
	return s.repo.FindByMobile(ctx, mobile)
}
