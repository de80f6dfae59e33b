package service

import "log"

// ResetNotifier delivers password-reset instructions. The server itself never
// sends mail; delivery is an injected collaborator so the boundary stays
// explicit.
type ResetNotifier interface {
	SendPasswordReset(email, token string) error
}

type logNotifier struct{}

// NewLogNotifier returns the default notifier: it logs the request and
// delivers nothing.
func NewLogNotifier() ResetNotifier {
	return &logNotifier{}
}

func (n *logNotifier) SendPasswordReset(email, token string) error {
	log.Printf("password reset requested for %s (delivery not configured)", email)
	return nil
}
