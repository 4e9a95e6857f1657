package interfaces

import (
	"context"

	"coursedesk/internal/domain/entities"
)

// IReferralRepository abstracts the append-only referral ledger.

type IReferralRepository interface {
	Create(ctx context.Context, r entities.Referral) (entities.Referral, error)
}
