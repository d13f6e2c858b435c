package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// SMSService defines the interface for outbound SMS
type SMSService interface {
	SendSMS(ctx context.Context, body, toNumber string) error
}

// TwilioConfig holds Twilio API credentials
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// TwilioService implements SMSService against the Twilio REST API
type TwilioService struct {
	config     TwilioConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewTwilioService creates a new TwilioService
func NewTwilioService(config TwilioConfig, logger zerolog.Logger) *TwilioService {
	return &TwilioService{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// SendSMS posts one message to the Twilio Messages endpoint. With no
// credentials configured the message is logged and dropped.
func (s *TwilioService) SendSMS(ctx context.Context, body, toNumber string) error {
	if s.config.AccountSID == "" || s.config.AuthToken == "" || s.config.FromNumber == "" {
		s.logger.Warn().
			Str("toNumber", toNumber).
			Msg("Twilio not configured - SMS not sent")
		return nil
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioBaseURL, s.config.AccountSID)

	form := url.Values{}
	form.Set("Body", body)
	form.Set("From", s.config.FromNumber)
	form.Set("To", toNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.SetBasicAuth(s.config.AccountSID, s.config.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("toNumber", toNumber).Msg("Failed to send SMS")
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("toNumber", toNumber).
			Str("detail", string(detail)).
			Msg("Twilio rejected SMS")
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	return nil
}
