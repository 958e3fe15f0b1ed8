package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/service/email"
)

func TestEmailService_TestMode(t *testing.T) {
	cfg := &config.Config{AppName: "GPSphere", TACTestMode: true}
	svc := email.NewService(cfg)
	ctx := context.Background()

	t.Run("TAC Code Is Captured", func(t *testing.T) {
		result := svc.SendTACEmail(ctx, "user@example.com", "482913")

		assert.False(t, result.Delivered)
		assert.Equal(t, "482913", result.Captured)
	})

	t.Run("Reset Code Is Captured", func(t *testing.T) {
		result := svc.SendResetEmail(ctx, "user@example.com", "115599")

		assert.False(t, result.Delivered)
		assert.Equal(t, "115599", result.Captured)
	})

	t.Run("Reminder Is Captured", func(t *testing.T) {
		result := svc.SendEventReminderEmail(ctx, "user@example.com", "Aina", "Gala", "Friday, 5 September 2026", "Main Hall")

		assert.False(t, result.Delivered)
		assert.Contains(t, result.Captured, "Gala")
	})
}

func TestEmailService_Unconfigured(t *testing.T) {
	cfg := &config.Config{AppName: "GPSphere"}
	svc := email.NewService(cfg)
	ctx := context.Background()

	t.Run("Degrades To Captured Content", func(t *testing.T) {
		result := svc.SendTACEmail(ctx, "user@example.com", "482913")

		assert.False(t, result.Delivered)
		assert.Equal(t, "482913", result.Captured)
		assert.Equal(t, "email not configured", result.Reason)
	})

	t.Run("Welcome Email Never Errors", func(t *testing.T) {
		result := svc.SendWelcomeEmail(ctx, "user@example.com", "Aina")

		assert.False(t, result.Delivered)
		assert.NotEmpty(t, result.Reason)
	})

	t.Run("Approval Email Never Errors", func(t *testing.T) {
		result := svc.SendApprovalEmail(ctx, "user@example.com", "Aina")

		assert.False(t, result.Delivered)
		assert.NotEmpty(t, result.Reason)
	})
}
