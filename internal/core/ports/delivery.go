package ports

import "context"

// EmailSender delivers an OTP to an email address. Fire-and-forget from the
// caller's perspective; any provider failure comes back as an error.
type EmailSender interface {
	SendOTP(ctx context.Context, address, code string) error
}

// SMSSender delivers an OTP to a 10-digit mobile number.
type SMSSender interface {
	SendOTP(ctx context.Context, mobile, code string) error
}
