package entities

import "time"

// PaymentStatus represents the lifecycle of a checkout payment.
//
// Transitions are forward-only: pending -> completed or pending -> failed.
// Refunds are applied by a separate back-office flow and never by the
// reconciliation handler.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is the payment record persisted once per checkout.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_intent_id-index): payment_intent_id
//   - GSI2 (user_id-index): user_id
//
// Monetary representation:
//   - Amount and DiscountAmount are integer minor-currency units (cents),
//     carried as-is from the checkout-session metadata.

type Payment struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	ProductID         string        `json:"product_id"`
	CheckoutSessionID string        `json:"checkout_session_id"`
	PaymentIntentID   string        `json:"payment_intent_id"`
	Amount            int64         `json:"amount"`
	DiscountAmount    int64         `json:"discount_amount"`
	AffiliateCode     string        `json:"affiliate_code,omitempty"`
	AffiliateUserID   string        `json:"affiliate_user_id,omitempty"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	CompletedAt       time.Time     `json:"completed_at,omitempty"`
}
