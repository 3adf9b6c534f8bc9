package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers plain-text mail through an SMTP relay.
type SMTPSender struct {
	dialer   dialer
	from     string
	fromName string
	log      *zap.Logger
}

func NewSMTPSender(cfg utils.EmailConfig, log *zap.Logger) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &SMTPSender{dialer: d, from: from, fromName: cfg.FromName, log: log}
}

// Send runs the dial in a goroutine so ctx can bound it. gomail has no
// context support; on timeout the dial is abandoned, not cancelled.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.Error("SMTP send failed", zap.Error(err), zap.String("to", to))
			return fmt.Errorf("send mail to %s: %w", to, err)
		}
		s.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
		return nil
	case <-ctx.Done():
		s.log.Warn("SMTP send timed out", zap.Error(ctx.Err()), zap.String("to", to))
		return fmt.Errorf("send mail to %s: %w", to, ctx.Err())
	}
}
