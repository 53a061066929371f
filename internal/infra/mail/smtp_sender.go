// Package mail implements the email channel over an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"custodia/config"
	"custodia/internal/domain/service"

	"github.com/pkg/errors"
)

type smtpSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender creates an EmailSender backed by a plain SMTP relay.
func NewSMTPSender(cfg *config.SMTPConfig) service.EmailSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr: net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port)),
		from: cfg.From,
		auth: auth,
	}
}

// SendEmail delivers a single HTML message through the configured relay.
func (s *smtpSender) SendEmail(ctx context.Context, email *service.Email) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context canceled before send")
	}

	msg := buildMessage(s.from, email)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{email.To}, msg); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", email.To)
	}

	return nil
}

func buildMessage(from string, email *service.Email) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.HTML)

	return []byte(b.String())
}
