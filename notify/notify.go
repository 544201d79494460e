// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/cliparse"
)

// Message is one plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the SMTP transport when mail credentials are configured and
// falls back to echoing messages to the log otherwise.
func New(cfg cliparse.Config) Notifier {
	if !cfg.MailConfigured() {
		log.Warn().Msg("VOTE_APP_EMAIL/VOTE_APP_EMAIL_PASS not set, voting links will be logged instead of emailed")
		return LogNotifier{}
	}
	return NewSMTPNotifier(cfg)
}

// LogNotifier writes every message to the operator log instead of sending it.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, msg Message) error {
	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("email (not actually sent)")
	return nil
}
