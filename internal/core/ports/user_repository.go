package ports

import (
	"context"

	"github.com/aoicon/registration-auth/internal/core/domain"
)

// UserRepository is the credential-store boundary. The store owns the
// registration records; this interface exposes identity lookup plus the two
// challenge mutations the OTP flow needs.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
	FindByMobile(ctx context.Context, mobile int64) (*domain.UserRecord, error)

	// SetChallenge persists a pending challenge on the record,
	// unconditionally replacing any prior one.
	SetChallenge(ctx context.Context, id string, challenge domain.PendingChallenge) error

	// ClearChallengeIfMatches atomically removes the pending challenge if
	// its code equals code, reporting whether the clear happened. This is
	// the single-use consumption point: of two concurrent calls with the
	// same code, at most one returns true.
	ClearChallengeIfMatches(ctx context.Context, id, code string) (bool, error)
}
