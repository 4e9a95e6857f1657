package interfaces

import "context"

// EmailMessage is a rendered transactional email.

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// IEmailSender abstracts the transactional email provider (e.g. Resend).
//
// Send is fire-and-forget from the caller's perspective: a failure is
// returned as a structured error and the caller decides whether it matters.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
