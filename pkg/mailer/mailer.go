package mailer

import (
	"context"
	"fmt"
	"strings"

	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Sender delivers a single message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New picks the provider named by cfg.Provider. An empty provider means log.
func New(cfg utils.EmailConfig, log *zap.Logger) (Sender, error) {
	log = log.With(zap.String("mailer", cfg.Provider))

	switch strings.ToLower(cfg.Provider) {
	case "", "log":
		return NewLogSender(log), nil
	case "smtp":
		if cfg.Host == "" || cfg.User == "" {
			return nil, fmt.Errorf("smtp provider requires SMTP_HOST and SMTP_USER")
		}
		return NewSMTPSender(cfg, log), nil
	case "sendgrid":
		if cfg.SendGridAPIKey == "" || cfg.From == "" {
			return nil, fmt.Errorf("sendgrid provider requires SENDGRID_API_KEY and EMAIL_FROM")
		}
		return NewSendGridSender(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
