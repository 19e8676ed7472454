package domain

import "time"

// UserRecord is a registration record owned by the credential store. The
// service only reads the identity attributes and mutates the pending
// challenge; everything else on the stored document is opaque to us.
type UserRecord struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Mobile             int64             `json:"mobile"`
	RegistrationNumber string            `json:"registrationNumber"`
	CertURL            string            `json:"certUrl,omitempty"`
	Challenge          *PendingChallenge `json:"-"`
}

// PendingChallenge is the OTP state attached to a user record while a login
// is in flight. A record carries at most one; issuing a new code always
// replaces the previous one.
type PendingChallenge struct {
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the challenge is past its validity window at now.
func (c *PendingChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// SessionPrincipal is the immutable claim set established at successful
// verification and carried inside the session token for the rest of the
// session. The set is fixed and total: every field is populated at issuance
// (CertURL may be empty, meaning the certificate is not available) and must
// survive token encode/decode unchanged.
type SessionPrincipal struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Mobile             int64  `json:"mobile"`
	RegistrationNumber string `json:"registrationNumber"`
	CertURL            string `json:"certUrl"`
}

// PrincipalFromRecord maps a user record's identity attributes into a
// session principal. Pure; never touches the store.
func PrincipalFromRecord(u *UserRecord) SessionPrincipal {
	return SessionPrincipal{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Mobile:             u.Mobile,
		RegistrationNumber: u.RegistrationNumber,
		CertURL:            u.CertURL,
	}
}
