package interfaces

import "github.com/stripe/stripe-go/v74"

// IWebhookVerifier validates inbound gateway payloads against the shared
// webhook secret before any processing happens.

type IWebhookVerifier interface {
	VerifyEvent(payload []byte, signature string) (stripe.Event, error)
}
