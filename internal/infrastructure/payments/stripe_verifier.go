package payments

import (
	"errors"
	"log"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"coursedesk/internal/usecase/interfaces"
)

var ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")

// StripeWebhookVerifier validates inbound webhook payloads against the
// endpoint's signing secret. Verification happens before any processing;
// a bad signature is rejected with no side effects.

type StripeWebhookVerifier struct {
	secret string
}

var _ interfaces.IWebhookVerifier = (*StripeWebhookVerifier)(nil)

func NewStripeWebhookVerifier(secret string) (*StripeWebhookVerifier, error) {
	if secret == "" {
		log.Printf("[webhook][gateway] missing STRIPE_WEBHOOK_SECRET")
		return nil, ErrMissingStripeWebhookSecret
	}
	log.Printf("[webhook][gateway] Stripe webhook verifier initialized")
	return &StripeWebhookVerifier{secret: secret}, nil
}

func (v *StripeWebhookVerifier) VerifyEvent(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		log.Printf("[webhook][gateway] signature verification failed err=%v", err)
		return stripe.Event{}, err
	}
	return event, nil
}
