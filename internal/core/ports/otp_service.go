package ports

import (
	"context"

	"github.com/aoicon/registration-auth/internal/core/domain"
)

// IssueResult confirms an OTP dispatch. It names the channel used and never
// echoes the code.
type IssueResult struct {
	Channel domain.IdentifierKind
}

// VerifyResult is a successful login: the established principal plus the
// signed session token carrying it.
type VerifyResult struct {
	Token     string
	Principal domain.SessionPrincipal
}

type OTPService interface {
	Issue(ctx context.Context, identifier string) (*IssueResult, error)
	Verify(ctx context.Context, identifier, code string) (*VerifyResult, error)
}
