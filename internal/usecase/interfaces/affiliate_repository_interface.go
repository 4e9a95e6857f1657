package interfaces

import (
	"context"

	"coursedesk/internal/domain/entities"
)

// IAffiliateRepository abstracts DynamoDB persistence for Affiliate.
//
// IncrementReferral adds earnings to total_earnings and bumps
// total_referrals by one in a single update request. PendingEarnings is
// out of scope here (payout flow).

type IAffiliateRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Affiliate, error)
	IncrementReferral(ctx context.Context, id string, earnings int64) (entities.Affiliate, error)
}
