package mailer

import (
	"context"
	"fmt"

	"ecommerce-catalog/pkg/utils"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers mail through the SendGrid v3 HTTP API.
type SendGridSender struct {
	client   sendGridClient
	from     string
	fromName string
	log      *zap.Logger
}

func NewSendGridSender(cfg utils.EmailConfig, log *zap.Logger) *SendGridSender {
	return &SendGridSender{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

func (s *SendGridSender) Send(ctx context.Context, to, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail("", to),
		body,
		"",
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.log.Error("SendGrid request failed", zap.Error(err), zap.String("to", to))
		return fmt.Errorf("send mail to %s via sendgrid: %w", to, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		s.log.Error("SendGrid rejected message",
			zap.Int("status", response.StatusCode),
			zap.String("body", response.Body),
			zap.String("to", to),
		)
		return fmt.Errorf("sendgrid status %d for %s", response.StatusCode, to)
	}

	s.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
