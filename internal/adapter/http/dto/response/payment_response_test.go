package response

import (
	"testing"
	"time"

	"coursedesk/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()

	p := entities.Payment{
		ID:                "pay-1",
		UserID:            "user-1",
		ProductID:         "full-course",
		CheckoutSessionID: "cs_1",
		PaymentIntentID:   "pi_1",
		Amount:            7900,
		DiscountAmount:    2000,
		AffiliateCode:     "SAVE20",
		AffiliateUserID:   "aff-user-1",
		Status:            entities.PaymentStatusCompleted,
		CreatedAt:         now,
		CompletedAt:       now,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.UserID != "user-1" || res.ProductID != "full-course" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 7900 || res.DiscountAmount != 2000 || res.Status != "completed" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.AffiliateCode != "SAVE20" || res.AffiliateUserID != "aff-user-1" {
		t.Fatalf("unexpected affiliate fields: %+v", res)
	}
	if res.CompletedAt == nil || !res.CompletedAt.Equal(now) {
		t.Fatalf("unexpected completed_at: %+v", res.CompletedAt)
	}
}

func TestFromPayment_PendingHasNoCompletedAt(t *testing.T) {
	p := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending, CreatedAt: time.Now().UTC()}

	res := FromPayment(p)
	if res.CompletedAt != nil {
		t.Fatalf("pending payment must not carry completed_at: %+v", res.CompletedAt)
	}
}

func TestFromPayments(t *testing.T) {
	out := FromPayments(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}

	out = FromPayments([]entities.Payment{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
