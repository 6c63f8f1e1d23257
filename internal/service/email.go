package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) SendWelcomeEmail(ctx context.Context, email, name string) error {
	if name == "" {
		name = "there"
	}
	dashboardURL := s.appURL + "/dashboard"
	subject, body := welcomeEmailTemplate(name, dashboardURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "welcome", "to", email, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{email},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "welcome", "to", email)
	}
	return err
}
