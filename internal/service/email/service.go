package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/resend/resend-go/v3"

	"gpsphere-backend/internal/config"
	"gpsphere-backend/internal/domain"
)

// Service delivers transactional email. Every method returns a
// domain.EmailResult instead of an error: in test mode, when the transport
// is unconfigured, or when delivery fails, the would-be content is captured
// and returned so callers never see a transport failure.
type Service interface {
	SendTACEmail(ctx context.Context, toEmail, tacCode string) domain.EmailResult
	SendResetEmail(ctx context.Context, toEmail, resetCode string) domain.EmailResult
	SendWelcomeEmail(ctx context.Context, toEmail, name string) domain.EmailResult
	SendApprovalEmail(ctx context.Context, toEmail, name string) domain.EmailResult
	SendEventReminderEmail(ctx context.Context, toEmail, name, eventName, eventDate, location string) domain.EmailResult
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	var client *resend.Client
	if !cfg.TACTestMode && cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	if client == nil && !cfg.TACTestMode {
		log.Println("Warning: email transport not configured, codes will be returned in API responses")
	}
	return &service{client: client, cfg: cfg}
}

var bodyTemplate = template.Must(template.New("email").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 2px solid {{.Color}}; border-radius: 10px;">
  <h2 style="color: {{.Color}}; text-align: center;">{{.AppName}}</h2>
  <h3 style="text-align: center; color: #333;">{{.Heading}}</h3>
  <hr style="border: 1px solid {{.Color}};">
  {{if .Greeting}}<p style="font-size: 16px;">{{.Greeting}}</p>{{end}}
  <p style="font-size: 16px;">{{.Intro}}</p>
  {{if .Code}}
  <div style="background: #f0fdf4; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;">
    <h1 style="color: {{.Color}}; letter-spacing: 10px; font-size: 42px; margin: 0;">{{.Code}}</h1>
  </div>
  {{end}}
  {{if .Note}}<p style="color: #d97706; font-weight: bold;">{{.Note}}</p>{{end}}
  {{if .Footer}}<p style="color: #666;">{{.Footer}}</p>{{end}}
</div>`))

type bodyData struct {
	AppName  string
	Color    string
	Heading  string
	Greeting string
	Intro    string
	Code     string
	Note     string
	Footer   string
}

// send attempts real delivery and degrades to a captured result on any
// failure. captured is the value surfaced to the caller in test mode.
func (s *service) send(toEmail, subject, captured string, data bodyData) domain.EmailResult {
	if s.cfg.TACTestMode {
		log.Printf("[TEST MODE] email to %s captured: %s", toEmail, captured)
		return domain.EmailResult{Delivered: false, Captured: captured}
	}

	if s.client == nil {
		log.Printf("Warning: email transport not configured, capturing content for %s", toEmail)
		return domain.EmailResult{Delivered: false, Captured: captured, Reason: "email not configured"}
	}

	data.AppName = s.cfg.AppName
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return domain.EmailResult{Delivered: false, Captured: captured, Reason: fmt.Sprintf("template failed: %v", err)}
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.AppName, s.cfg.FromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		log.Printf("Email sending failed for %s: %v", toEmail, err)
		return domain.EmailResult{Delivered: false, Captured: captured, Reason: fmt.Sprintf("email failed: %v", err)}
	}

	return domain.EmailResult{Delivered: true}
}

func (s *service) SendTACEmail(ctx context.Context, toEmail, tacCode string) domain.EmailResult {
	return s.send(toEmail, fmt.Sprintf("%s - Your Authentication Code", s.cfg.AppName), tacCode, bodyData{
		Color:   "#10b981",
		Heading: "Two-Factor Authentication",
		Intro:   "Your TAC (Time-based Authentication Code) is:",
		Code:    tacCode,
		Note:    "This code expires in 15 minutes.",
		Footer:  "If you didn't request this code, please ignore this email.",
	})
}

func (s *service) SendResetEmail(ctx context.Context, toEmail, resetCode string) domain.EmailResult {
	return s.send(toEmail, fmt.Sprintf("%s - Password Reset Code", s.cfg.AppName), resetCode, bodyData{
		Color:   "#2563eb",
		Heading: "Password Reset Request",
		Intro:   "Your password reset code is:",
		Code:    resetCode,
		Note:    "This code expires in 15 minutes.",
		Footer:  "If you did not request this, you can safely ignore this email.",
	})
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, name string) domain.EmailResult {
	return s.send(toEmail, fmt.Sprintf("Welcome to %s!", s.cfg.AppName), "welcome", bodyData{
		Color:    "#10b981",
		Heading:  "Welcome!",
		Greeting: fmt.Sprintf("Welcome, %s!", name),
		Intro:    "Thank you for joining! Your account has been created and is pending admin approval, usually within 1-2 business days.",
		Footer:   "You will receive another email once your account is approved.",
	})
}

func (s *service) SendApprovalEmail(ctx context.Context, toEmail, name string) domain.EmailResult {
	return s.send(toEmail, fmt.Sprintf("%s - Account Approved", s.cfg.AppName), "approved", bodyData{
		Color:    "#10b981",
		Heading:  "Account Approved",
		Greeting: fmt.Sprintf("Hello, %s!", name),
		Intro:    "Your account has been approved. You can now sign in and take part in our programs and events.",
	})
}

func (s *service) SendEventReminderEmail(ctx context.Context, toEmail, name, eventName, eventDate, location string) domain.EmailResult {
	intro := fmt.Sprintf("The event %q takes place on %s", eventName, eventDate)
	if location != "" {
		intro = fmt.Sprintf("%s at %s", intro, location)
	}
	return s.send(toEmail, fmt.Sprintf("%s - Upcoming Event: %s", s.cfg.AppName, eventName), intro, bodyData{
		Color:    "#10b981",
		Heading:  "Upcoming Event Reminder",
		Greeting: fmt.Sprintf("Hello, %s!", name),
		Intro:    intro + ".",
		Footer:   "We hope to see you there!",
	})
}
