package services

import (
	"context"
	"fmt"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/email"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/sms"
)

// NotifyService forwards plan updates to advisors over email and SMS
type NotifyService struct {
	email email.EmailService
	sms   sms.SMSService
}

// NewNotifyService creates a new NotifyService
func NewNotifyService(emailService email.EmailService, smsService sms.SMSService) *NotifyService {
	return &NotifyService{email: emailService, sms: smsService}
}

// NotifyAdvisor emails the advisor and, when the student left a phone
// number, also texts them. A failed SMS does not undo the sent email, it
// is only logged.
func (s *NotifyService) NotifyAdvisor(ctx context.Context, req *dto.AdvisorNotifyRequest) error {
	if err := s.email.SendAdvisorEmail(req.AdvisorEmail, req.Email, req.Body); err != nil {
		return &apperrors.CustomError{
			Err:     apperrors.ErrUpstreamFailure,
			Message: "failed to notify advisor",
			Cause:   err,
		}
	}

	if req.Phone != "" {
		body := fmt.Sprintf("New education-plan request from %s", req.Email)
		if err := s.sms.SendSMS(ctx, body, req.Phone); err != nil {
			logger.Warn().Err(err).Str("phone", req.Phone).Msg("Advisor SMS failed after email was sent")
		}
	}

	return nil
}
