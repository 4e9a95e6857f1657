package request

import (
	"errors"
	"strings"
)

// CheckoutSimulationRequest is the payload for the admin simulation route.
// It mirrors the metadata a live checkout session carries; identifiers and
// timestamps are fabricated server-side.

type CheckoutSimulationRequest struct {
	UserID         string `json:"user_id"`
	ProductID      string `json:"product_id"`
	AffiliateCode  string `json:"affiliate_code,omitempty"`
	FinalPrice     int64  `json:"final_price"`
	DiscountAmount int64  `json:"discount_amount"`
	CustomerEmail  string `json:"customer_email,omitempty"`
	CustomerName   string `json:"customer_name,omitempty"`
}

func (r *CheckoutSimulationRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return errors.New("product_id is required")
	}
	if r.FinalPrice <= 0 {
		return errors.New("final_price must be a positive amount in minor units")
	}
	if r.DiscountAmount < 0 {
		return errors.New("discount_amount cannot be negative")
	}
	return nil
}
