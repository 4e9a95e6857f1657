package entities

import "time"

// Affiliate is the referral partner account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code (unique referral code)
//
// Counter semantics:
//   - TotalEarnings/TotalReferrals are incremented at referral time.
//   - PendingEarnings is only moved when a payout is requested, which is a
//     separate flow; the reconciliation handler never touches it.
//   - All monetary counters are integer minor-currency units.

type Affiliate struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Code            string    `json:"code"`
	TotalEarnings   int64     `json:"total_earnings"`
	TotalReferrals  int64     `json:"total_referrals"`
	PendingEarnings int64     `json:"pending_earnings"`
	PaidEarnings    int64     `json:"paid_earnings"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
