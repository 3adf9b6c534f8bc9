package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogSender writes messages to the logger instead of delivering them.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.log.Info("Email not delivered (log provider)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	s.log.Debug("Email body", zap.String("to", to), zap.String("body", body))
	return nil
}
