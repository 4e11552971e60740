package http

import (
	"context"

	"beyazmasa/internal/shared/logger"
)

// noopNotifier stands in when no messaging gateway is configured. The status
// change still succeeds; only the citizen message is skipped.
type noopNotifier struct {
	log logger.Interface
}

func (n noopNotifier) Notify(ctx context.Context, phone, message string) error {
	n.log.Debugw("citizen notification skipped, no gateway configured", "phone", phone)
	return nil
}

// noopMailer stands in when no SMTP server is configured.
type noopMailer struct {
	log logger.Interface
}

func (m noopMailer) SendCredentials(ctx context.Context, email, fullName, password string) error {
	m.log.Warnw("credential mail skipped, no SMTP configured", "email", email)
	return nil
}
