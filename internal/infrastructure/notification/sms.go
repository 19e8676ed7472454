package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultSMSTimeout = 10 * time.Second

// SMSGatewayConfig holds the provider account for the HTTP SMS gateway
// (smsgatewayhub-style GET API).
type SMSGatewayConfig struct {
	BaseURL  string
	APIKey   string
	SenderID string
	Timeout  time.Duration
}

// HTTPSMSSender delivers OTP texts through the gateway's SendSMS endpoint.
type HTTPSMSSender struct {
	cfg    SMSGatewayConfig
	client *http.Client
}

func NewHTTPSMSSender(cfg SMSGatewayConfig) *HTTPSMSSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMSTimeout
	}
	return &HTTPSMSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// SendOTP sends the code to a 10-digit mobile number on the transactional
// route. The gateway reports some failures with a 200 body, but its error
// modes are provider-specific; only transport and HTTP status are checked
// here.
func (s *HTTPSMSSender) SendOTP(ctx context.Context, mobile, code string) error {
	if s.cfg.APIKey == "" {
		return fmt.Errorf("sms gateway credentials not configured")
	}

	params := url.Values{}
	params.Set("APIKey", s.cfg.APIKey)
	params.Set("senderid", s.cfg.SenderID)
	params.Set("channel", "2")
	params.Set("DCS", "0")
	params.Set("flashsms", "0")
	params.Set("number", mobile)
	params.Set("text", otpMessage(code))
	params.Set("route", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send sms: gateway returned %s", resp.Status)
	}
	return nil
}
