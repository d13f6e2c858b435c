package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

type fakeEmailSender struct {
	err     error
	to      string
	student string
	body    string
}

func (f *fakeEmailSender) SendAdvisorEmail(toEmail, studentEmail, body string) error {
	f.to = toEmail
	f.student = studentEmail
	f.body = body
	return f.err
}

type fakeSMSSender struct {
	err  error
	sent []string
}

func (f *fakeSMSSender) SendSMS(_ context.Context, body, toNumber string) error {
	f.sent = append(f.sent, toNumber+": "+body)
	return f.err
}

func TestNotifyAdvisor_EmailOnly(t *testing.T) {
	emailSender := &fakeEmailSender{}
	smsSender := &fakeSMSSender{}
	svc := NewNotifyService(emailSender, smsSender)

	err := svc.NotifyAdvisor(context.Background(), &dto.AdvisorNotifyRequest{
		Email:        "student@example.com",
		AdvisorEmail: "advisor@example.com",
		Body:         "Education plan update",
	})
	require.NoError(t, err)

	assert.Equal(t, "advisor@example.com", emailSender.to)
	assert.Equal(t, "student@example.com", emailSender.student)
	assert.Empty(t, smsSender.sent)
}

func TestNotifyAdvisor_WithPhoneSendsSMS(t *testing.T) {
	emailSender := &fakeEmailSender{}
	smsSender := &fakeSMSSender{}
	svc := NewNotifyService(emailSender, smsSender)

	err := svc.NotifyAdvisor(context.Background(), &dto.AdvisorNotifyRequest{
		Email:        "student@example.com",
		AdvisorEmail: "advisor@example.com",
		Phone:        "+15551234567",
	})
	require.NoError(t, err)

	require.Len(t, smsSender.sent, 1)
	assert.Contains(t, smsSender.sent[0], "+15551234567")
	assert.Contains(t, smsSender.sent[0], "student@example.com")
}

func TestNotifyAdvisor_EmailFailure(t *testing.T) {
	emailSender := &fakeEmailSender{err: errors.New("smtp connect refused")}
	smsSender := &fakeSMSSender{}
	svc := NewNotifyService(emailSender, smsSender)

	err := svc.NotifyAdvisor(context.Background(), &dto.AdvisorNotifyRequest{
		Email:        "student@example.com",
		AdvisorEmail: "advisor@example.com",
		Phone:        "+15551234567",
	})

	require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	// No SMS goes out when the email failed.
	assert.Empty(t, smsSender.sent)
}

func TestNotifyAdvisor_SMSFailureIsNotFatal(t *testing.T) {
	emailSender := &fakeEmailSender{}
	smsSender := &fakeSMSSender{err: errors.New("twilio unavailable")}
	svc := NewNotifyService(emailSender, smsSender)

	err := svc.NotifyAdvisor(context.Background(), &dto.AdvisorNotifyRequest{
		Email:        "student@example.com",
		AdvisorEmail: "advisor@example.com",
		Phone:        "+15551234567",
	})

	require.NoError(t, err)
}
