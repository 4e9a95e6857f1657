package response

import (
	"time"

	"coursedesk/internal/domain/entities"
)

type AffiliateResponse struct {
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

func FromAffiliate(a entities.Affiliate) AffiliateResponse {
	return AffiliateResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		Code:            a.Code,
		TotalEarnings:   a.TotalEarnings,
		TotalReferrals:  a.TotalReferrals,
		PendingEarnings: a.PendingEarnings,
		PaidEarnings:    a.PaidEarnings,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}
