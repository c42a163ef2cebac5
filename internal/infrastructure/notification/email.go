package notification

import (
	"context"
	"fmt"

	"clinic-booking/config"

	"github.com/go-gomail/gomail"
)

type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// SMTPMailer sends mail through one SMTP connection per message.
type SMTPMailer struct {
	from string
	send func(...*gomail.Message) error
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &SMTPMailer{
		from: cfg.From,
		send: dialer.DialAndSend,
	}
}

func (m *SMTPMailer) SendEmail(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.TextBody)
	if email.HTMLBody != "" {
		msg.AddAlternative("text/html", email.HTMLBody)
	}

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", email.To, err)
	}
	return nil
}
