package notification

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender stands in for SMTP and Twilio when they are not configured,
// typically in development. It only records what would have been sent.
type LogSender struct {
	log *logrus.Logger
}

func NewLogSender(log *logrus.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendEmail(ctx context.Context, email Email) error {
	s.log.WithFields(logrus.Fields{
		"channel": "email",
		"to":      email.To,
		"subject": email.Subject,
	}).Info("Notification not delivered, no SMTP host configured")
	return nil
}

func (s *LogSender) SendSMS(ctx context.Context, to, body string) error {
	s.log.WithFields(logrus.Fields{
		"channel": "sms",
		"to":      to,
	}).Info("Notification not delivered, no Twilio account configured")
	return nil
}
