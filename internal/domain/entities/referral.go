package entities

import "time"

// ReferralStatus represents the payout state of a referral ledger entry.

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusPaid      ReferralStatus = "paid"
	ReferralStatusCancelled ReferralStatus = "cancelled"
)

// Referral is the append-only ledger entry linking one completed payment to
// the affiliate who sourced it. Created at most once per payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (affiliate_id-index): affiliate_id

type Referral struct {
	ID          string         `json:"id"`
	AffiliateID string         `json:"affiliate_id"`
	PaymentID   string         `json:"payment_id"`
	BuyerUserID string         `json:"buyer_user_id"`
	Earnings    int64          `json:"earnings"`
	Status      ReferralStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
