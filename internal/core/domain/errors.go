package domain

import "errors"

var (
	// ErrInvalidIdentifier means the input is neither an email nor a
	// 10-digit mobile number; rejected before any store access.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrUserNotFound means no registration matches the identifier. The
	// miss is reported as-is so legitimate registrants can self-diagnose;
	// the existence disclosure is a deliberate tradeoff.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoChallenge means verification ran against a record with no
	// pending OTP; the user must request a new one.
	ErrNoChallenge = errors.New("no pending otp")

	// ErrChallengeExpired means the OTP's validity window has passed. The
	// stale challenge stays on the record; re-issuing overwrites it.
	ErrChallengeExpired = errors.New("otp expired")

	// ErrCodeMismatch means the submitted code does not equal the pending
	// one. The challenge is not consumed.
	ErrCodeMismatch = errors.New("otp mismatch")

	// ErrDeliveryFailed wraps email/SMS provider failures. The challenge
	// remains persisted; re-issuing is the recovery path.
	ErrDeliveryFailed = errors.New("otp delivery failed")

	// ErrStoreUnavailable wraps credential-store failures.
	ErrStoreUnavailable = errors.New("credential store unavailable")

	// ErrInvalidSession means a session token failed to parse, verify, or
	// carry the full claim set.
	ErrInvalidSession = errors.New("invalid session")
)
