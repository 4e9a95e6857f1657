package email

import (
	"context"
	"errors"
	"log"

	"github.com/resend/resend-go/v2"

	"coursedesk/internal/usecase/interfaces"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

const defaultFromAddress = "Coursedesk <no-reply@coursedesk.app>"

// ResendSender delivers transactional email through Resend.

type ResendSender struct {
	client *resend.Client
	from   string
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey, from string) (*ResendSender, error) {
	if apiKey == "" {
		log.Printf("[email][resend] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	if from == "" {
		from = defaultFromAddress
	}
	log.Printf("[email][resend] Resend client initialized from=%s", from)
	return &ResendSender{client: resend.NewClient(apiKey), from: from}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[email][resend] send failed to=%s err=%v", msg.To, err)
		return err
	}
	log.Printf("[email][resend] send success to=%s email_id=%s", msg.To, sent.Id)
	return nil
}
