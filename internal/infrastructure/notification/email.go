package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig captures the settings for the outbound mail account.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPEmailSender delivers OTP mail over plain SMTP.
type SMTPEmailSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPEmailSender(cfg SMTPConfig) (*SMTPEmailSender, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTPEmailSender{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}, nil
}

// SendOTP sends the code to address. net/smtp has no context support, so
// ctx is only honoured up front; a slow server surfaces as a send error via
// the connection deadline on the provider side.
func (s *SMTPEmailSender) SendOTP(ctx context.Context, address, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildOTPMail(s.from, address, code)
	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{address}, msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

func buildOTPMail(from, to, code string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	sb.WriteString("Subject: Your AOICON 2026 login OTP\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(otpMessage(code))
	sb.WriteString("\r\n")
	return []byte(sb.String())
}

// otpMessage is the shared wording for both channels.
func otpMessage(code string) string {
	return fmt.Sprintf("Your OTP for AOICON 2026 KOLKATA registration is: %s. Valid for 10 minutes. Do not share this OTP with anyone.", code)
}
