package domain

import "strings"

// IdentifierKind classifies the login identifier a user submitted.
type IdentifierKind string

const (
	IdentifierEmail   IdentifierKind = "email"
	IdentifierMobile  IdentifierKind = "mobile"
	IdentifierInvalid IdentifierKind = "invalid"
)

// ClassifyIdentifier decides whether raw is an email address, a 10-digit
// mobile number, or neither. Anything containing '@' counts as email — the
// store lookup is the real validity check, so no RFC-grade syntax checking
// happens here. Issue and verify both classify through this function so the
// two stages always agree on identifier shape.
func ClassifyIdentifier(raw string) (string, IdentifierKind) {
	id := strings.TrimSpace(raw)
	switch {
	case id == "":
		return id, IdentifierInvalid
	case strings.Contains(id, "@"):
		return id, IdentifierEmail
	case isTenDigits(id):
		return id, IdentifierMobile
	default:
		return id, IdentifierInvalid
	}
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
