package mail

import (
	"context"
	"fmt"

	"gepe-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

// ResendClient sends transactional email through Resend. Without an API key
// the client stays disabled and sends are skipped upstream.
type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) *ResendClient {
	if apiKey == "" {
		return &ResendClient{logger: logger}
	}
	return &ResendClient{
		client: resend.NewClient(apiKey),
		logger: logger,
	}
}

// IsEnabled reports whether an API key was configured.
func (c *ResendClient) IsEnabled() bool {
	return c.client != nil
}

func (c *ResendClient) SendEmail(ctx context.Context, from string, to []string, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	if c.client == nil {
		return "", fmt.Errorf("email client is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
