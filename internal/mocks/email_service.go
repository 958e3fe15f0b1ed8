package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gpsphere-backend/internal/domain"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendTACEmail(ctx context.Context, toEmail, tacCode string) domain.EmailResult {
	args := m.Called(ctx, toEmail, tacCode)
	return args.Get(0).(domain.EmailResult)
}

func (m *EmailService) SendResetEmail(ctx context.Context, toEmail, resetCode string) domain.EmailResult {
	args := m.Called(ctx, toEmail, resetCode)
	return args.Get(0).(domain.EmailResult)
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) domain.EmailResult {
	args := m.Called(ctx, toEmail, name)
	return args.Get(0).(domain.EmailResult)
}

func (m *EmailService) SendApprovalEmail(ctx context.Context, toEmail, name string) domain.EmailResult {
	args := m.Called(ctx, toEmail, name)
	return args.Get(0).(domain.EmailResult)
}

func (m *EmailService) SendEventReminderEmail(ctx context.Context, toEmail, name, eventName, eventDate, location string) domain.EmailResult {
	args := m.Called(ctx, toEmail, name, eventName, eventDate, location)
	return args.Get(0).(domain.EmailResult)
}
