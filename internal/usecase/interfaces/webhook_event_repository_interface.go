package interfaces

import (
	"context"

	"coursedesk/internal/domain/entities"
)

// IWebhookEventRepository records processed gateway event ids.

type IWebhookEventRepository interface {
	// Record stores the event id with a uniqueness constraint. It returns
	// false when the id was already recorded (duplicate delivery).
	Record(ctx context.Context, ev entities.WebhookEvent) (bool, error)
}
