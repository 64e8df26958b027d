// Package mailer sends transactional email for the admin service. A
// Resend-backed implementation is used when an API key is configured;
// otherwise messages are logged and reported as not sent.
package mailer

import (
	"context"
	"log/slog"
)

// Message is a single outbound email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	// Send delivers a single message. One attempt, no retries.
	Send(ctx context.Context, msg Message) error

	// Configured reports whether a real provider backs this mailer.
	// The log-only fallback returns false.
	Configured() bool
}

// New returns the Resend mailer when an API key is present, otherwise the
// log-only fallback.
func New(apiKey, from string, logger *slog.Logger) Mailer {
	if apiKey == "" {
		return &LogMailer{logger: logger}
	}
	return NewResend(apiKey, from)
}

// LogMailer records outbound mail in the log without delivering it.
type LogMailer struct {
	logger *slog.Logger
}

func (m *LogMailer) Configured() bool { return false }

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info("email logged (mail provider not configured)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
