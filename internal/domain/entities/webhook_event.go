package entities

import "time"

// WebhookEvent is the processed-event ledger entry used to deduplicate
// at-least-once gateway deliveries. The event id acts as the idempotency
// key: the first delivery records it, later deliveries are acknowledged
// without side effects.
//
// Storage model (DynamoDB):
//   - PK: event_id (conditional put enforces uniqueness)

type WebhookEvent struct {
	EventID    string    `json:"event_id"`
	Provider   string    `json:"provider"`
	Type       string    `json:"type"`
	ReceivedAt time.Time `json:"received_at"`
}
