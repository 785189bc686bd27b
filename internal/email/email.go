// Package email delivers the assembled digest over SMTP.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/bal2005/news-summarizer-agent/internal/retry"
)

type Sender struct {
	from     string
	password string
	to       []string
	host     string
	port     string
	attempts int
	delay    time.Duration
	logger   *slog.Logger
}

// NewSender validates the delivery settings up front; a misconfigured
// sender must fail at startup, not mid-cycle.
func NewSender(from, password, to, host, port string, attempts int, delay time.Duration, logger *slog.Logger) (*Sender, error) {
	if from == "" {
		return nil, fmt.Errorf("email sender address is required")
	}
	if password == "" {
		return nil, fmt.Errorf("email password is required")
	}
	if to == "" {
		return nil, fmt.Errorf("email recipient list is required")
	}

	recipients := strings.Split(to, ",")
	for i, addr := range recipients {
		recipients[i] = strings.TrimSpace(addr)
	}

	return &Sender{
		from:     from,
		password: password,
		to:       recipients,
		host:     host,
		port:     port,
		attempts: attempts,
		delay:    delay,
		logger:   logger,
	}, nil
}

// Send delivers one HTML message, retrying with exponential backoff.
func (s *Sender) Send(ctx context.Context, subject, htmlBody string) error {
	message := s.buildMessage(subject, htmlBody)
	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	addr := s.host + ":" + s.port

	err := retry.WithRetry(ctx, retry.Config{
		MaxAttempts: s.attempts,
		Delay:       s.delay,
		Backoff:     true,
	}, func() error {
		if err := smtp.SendMail(addr, auth, s.from, s.to, message); err != nil {
			s.logger.Warn("email send attempt failed", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("send digest email: %w", err)
	}

	s.logger.Info("digest email sent", "recipients", len(s.to), "subject", subject)
	return nil
}

func (s *Sender) buildMessage(subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + s.from + "\r\n")
	b.WriteString("To: " + strings.Join(s.to, ", ") + "\r\n")
	// Non-ASCII subjects (the default prefix carries an emoji) need
	// RFC 2047 encoding; ASCII passes through unchanged.
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
