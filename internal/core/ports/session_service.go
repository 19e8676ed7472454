package ports

import "github.com/aoicon/registration-auth/internal/core/domain"

// SessionService turns a verified principal into an opaque signed token at
// login, and rehydrates the same principal from that token on later
// requests. The claim set is fixed; Parse fails on tokens missing any claim.
type SessionService interface {
	Issue(principal domain.SessionPrincipal) (string, error)
	Parse(token string) (domain.SessionPrincipal, error)
}
