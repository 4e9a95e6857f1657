package interfaces

import (
	"context"
	"time"

	"coursedesk/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// UpdateStatus and SetAffiliateUser return a zero-ID payment when no record
// matched, mirroring the not-found convention used across repositories.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, completedAt time.Time) (entities.Payment, error)
	SetAffiliateUser(ctx context.Context, id string, affiliateUserID string) (entities.Payment, error)
}
