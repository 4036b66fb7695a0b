package delivery

import (
	"context"
	"fmt"
	"net/smtp"

	"laborlink/internal/pkg/config"
	"laborlink/internal/pkg/errs"
)

// SMTPSender delivers notification emails over plain SMTP with optional
// AUTH. The transport is synchronous; retry policy lives in the caller.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(_ context.Context, to, subject, body string) error {
	if s.cfg.Host == "" {
		return errs.New("smtp host not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.cfg.From, to, subject, body)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return errs.Wrap(err, "failed to send email")
	}

	return nil
}
