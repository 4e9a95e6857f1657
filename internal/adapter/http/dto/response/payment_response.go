package response

import (
	"time"

	"coursedesk/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	ProductID         string     `json:"product_id"`
	CheckoutSessionID string     `json:"checkout_session_id"`
	PaymentIntentID   string     `json:"payment_intent_id"`
	Amount            int64      `json:"amount"`
	DiscountAmount    int64      `json:"discount_amount"`
	AffiliateCode     string     `json:"affiliate_code,omitempty"`
	AffiliateUserID   string     `json:"affiliate_user_id,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		ProductID:         p.ProductID,
		CheckoutSessionID: p.CheckoutSessionID,
		PaymentIntentID:   p.PaymentIntentID,
		Amount:            p.Amount,
		DiscountAmount:    p.DiscountAmount,
		AffiliateCode:     p.AffiliateCode,
		AffiliateUserID:   p.AffiliateUserID,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
	}
	if !p.CompletedAt.IsZero() {
		completedAt := p.CompletedAt
		res.CompletedAt = &completedAt
	}
	return res
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
