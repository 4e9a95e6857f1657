package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckoutProduct = errors.New("invalid product id")
	ErrInvalidCheckoutAmount  = errors.New("invalid checkout amount")
	ErrInvalidPaymentIntentID = errors.New("invalid payment intent id")
)

// earlyAccessProducts are the product tiers that grant the early-access
// marker on the buyer's record.
var earlyAccessProducts = map[string]struct{}{
	"early-access":          {},
	"early-access-founding": {},
}

// productLabels maps product ids to the display names used in
// confirmation emails. Unknown products fall back to the raw id.
var productLabels = map[string]string{
	"early-access":          "Early Access",
	"early-access-founding": "Early Access (Founding Member)",
	"full-course":           "Full Course",
}

// CheckoutCompleted is the verified "checkout session completed" command.
//
// Prices arrive pre-computed from the checkout-creation step as gateway
// metadata (integer minor-currency units); the orchestrator trusts them
// instead of recomputing pricing. CustomerEmail prefers the
// provider-reported address over metadata, resolved at the webhook adapter.
type CheckoutCompleted struct {
	EventID           string
	UserID            string
	ProductID         string
	AffiliateCode     string
	OriginalPrice     int64
	FinalPrice        int64
	DiscountAmount    int64
	CheckoutSessionID string
	PaymentIntentID   string
	CustomerEmail     string
	CustomerName      string
}

// ICheckoutUseCase is the checkout reconciliation orchestrator.
//
// HandleCheckoutCompleted runs the fixed side-effect sequence:
// dedup -> persist payment -> grant entitlement -> credit affiliate ->
// confirmation email. Payment persistence and entitlement updates are
// fatal; affiliate crediting and email are best-effort and never fail
// the handler. The same entry point serves live webhooks and synthetic
// admin-triggered simulations.

type ICheckoutUseCase interface {
	HandleCheckoutCompleted(ctx context.Context, cmd CheckoutCompleted) (entities.Payment, error)
	HandlePaymentIntentSucceeded(ctx context.Context, intentID string) error
	HandlePaymentIntentFailed(ctx context.Context, intentID string) error
}

type CheckoutUseCase struct {
	payments   interfaces.IPaymentRepository
	users      interfaces.IUserRepository
	affiliates interfaces.IAffiliateRepository
	referrals  interfaces.IReferralRepository
	events     interfaces.IWebhookEventRepository
	email      interfaces.IEmailSender
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	payments interfaces.IPaymentRepository,
	users interfaces.IUserRepository,
	affiliates interfaces.IAffiliateRepository,
	referrals interfaces.IReferralRepository,
	events interfaces.IWebhookEventRepository,
	email interfaces.IEmailSender,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		payments:   payments,
		users:      users,
		affiliates: affiliates,
		referrals:  referrals,
		events:     events,
		email:      email,
	}
}

func (u *CheckoutUseCase) HandleCheckoutCompleted(ctx context.Context, cmd CheckoutCompleted) (entities.Payment, error) {
	cmd.ProductID = strings.TrimSpace(cmd.ProductID)
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	cmd.AffiliateCode = strings.TrimSpace(cmd.AffiliateCode)
	log.Printf("[checkout][usecase] reconcile start event_id=%s user_id=%s product_id=%s final_price=%d discount=%d",
		cmd.EventID, cmd.UserID, cmd.ProductID, cmd.FinalPrice, cmd.DiscountAmount)

	if cmd.ProductID == "" {
		return entities.Payment{}, ErrInvalidCheckoutProduct
	}
	if cmd.FinalPrice <= 0 || cmd.DiscountAmount < 0 {
		return entities.Payment{}, ErrInvalidCheckoutAmount
	}
	if u.payments == nil {
		return entities.Payment{}, errors.New("payment repository not configured")
	}

	now := time.Now().UTC()

	// Dedup on the gateway event id before any write. Simulations fabricate
	// a fresh id per call, so they always pass through.
	if cmd.EventID != "" && u.events != nil {
		fresh, err := u.events.Record(ctx, entities.WebhookEvent{
			EventID:    cmd.EventID,
			Provider:   "stripe",
			Type:       "checkout.session.completed",
			ReceivedAt: now,
		})
		if err != nil {
			log.Printf("[checkout][usecase] event ledger write failed event_id=%s err=%v", cmd.EventID, err)
			return entities.Payment{}, err
		}
		if !fresh {
			log.Printf("[checkout][usecase] duplicate delivery skipped event_id=%s", cmd.EventID)
			return entities.Payment{}, nil
		}
	}

	// Step 1: persist the payment. A failure here fails the whole handler
	// and the gateway redelivers the event later.
	p := entities.Payment{
		ID:                uuid.NewString(),
		UserID:            cmd.UserID,
		ProductID:         cmd.ProductID,
		CheckoutSessionID: cmd.CheckoutSessionID,
		PaymentIntentID:   cmd.PaymentIntentID,
		Amount:            cmd.FinalPrice,
		DiscountAmount:    cmd.DiscountAmount,
		AffiliateCode:     cmd.AffiliateCode,
		Status:            entities.PaymentStatusCompleted,
		CreatedAt:         now,
		CompletedAt:       now,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[checkout][usecase] payment create failed event_id=%s err=%v", cmd.EventID, err)
		return entities.Payment{}, err
	}
	log.Printf("[checkout][usecase] payment created payment_id=%s status=%s", created.ID, created.Status)

	// Step 2: resolve the buyer. An unknown user (guest checkout) is not an
	// error: log, still try the confirmation email, report success.
	if u.users == nil {
		log.Printf("[checkout][usecase] user repository not configured; skipping entitlement payment_id=%s", created.ID)
		u.sendConfirmation(ctx, cmd.CustomerEmail, cmd.CustomerName, created)
		return created, nil
	}
	buyer, err := u.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		log.Printf("[checkout][usecase] user lookup failed user_id=%s err=%v", cmd.UserID, err)
		return entities.Payment{}, err
	}
	if buyer.ID == "" {
		log.Printf("[checkout][usecase] no user record for buyer; access not granted user_id=%q payment_id=%s", cmd.UserID, created.ID)
		u.sendConfirmation(ctx, cmd.CustomerEmail, cmd.CustomerName, created)
		return created, nil
	}

	// Step 3: grant entitlement. This is the side effect the webhook exists
	// to guarantee, so a failure aborts the handler.
	earlyAccess := isEarlyAccessProduct(cmd.ProductID)
	if _, err := u.users.GrantAccess(ctx, buyer.ID, now, earlyAccess); err != nil {
		log.Printf("[checkout][usecase] entitlement update failed user_id=%s payment_id=%s err=%v", buyer.ID, created.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[checkout][usecase] entitlement granted user_id=%s early_access=%t", buyer.ID, earlyAccess)

	// Step 4: credit affiliate, contained. A broken credit must never undo
	// a granted entitlement.
	if cmd.AffiliateCode != "" {
		if credited := u.creditAffiliate(ctx, cmd.AffiliateCode, created, buyer.ID); credited.ID != "" {
			created = credited
		}
	}

	// Step 5: confirmation email, contained.
	to := cmd.CustomerEmail
	if to == "" {
		to = buyer.Email
	}
	name := cmd.CustomerName
	if name == "" {
		name = buyer.Name
	}
	u.sendConfirmation(ctx, to, name, created)

	log.Printf("[checkout][usecase] reconcile success payment_id=%s user_id=%s", created.ID, buyer.ID)
	return created, nil
}

// creditAffiliate resolves the code, appends the referral ledger entry,
// bumps the affiliate counters and back-fills the payment's affiliate user.
// Every failure is logged and swallowed. It returns the back-filled payment
// when that last write succeeded, or a zero payment otherwise.
func (u *CheckoutUseCase) creditAffiliate(ctx context.Context, code string, p entities.Payment, buyerUserID string) entities.Payment {
	if u.affiliates == nil || u.referrals == nil {
		log.Printf("[affiliate][usecase] affiliate stores not configured; skipping credit payment_id=%s", p.ID)
		return entities.Payment{}
	}

	aff, err := u.affiliates.GetByCode(ctx, code)
	if err != nil {
		log.Printf("[affiliate][usecase] lookup failed code=%s err=%v", code, err)
		return entities.Payment{}
	}
	if aff.ID == "" {
		log.Printf("[affiliate][usecase] unknown code; skipping credit code=%s payment_id=%s", code, p.ID)
		return entities.Payment{}
	}
	if !aff.IsActive {
		log.Printf("[affiliate][usecase] affiliate inactive; skipping credit code=%s affiliate_id=%s", code, aff.ID)
		return entities.Payment{}
	}

	ref := entities.Referral{
		ID:          uuid.NewString(),
		AffiliateID: aff.ID,
		PaymentID:   p.ID,
		BuyerUserID: buyerUserID,
		Earnings:    p.DiscountAmount,
		Status:      entities.ReferralStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.referrals.Create(ctx, ref); err != nil {
		log.Printf("[affiliate][usecase] referral create failed affiliate_id=%s payment_id=%s err=%v", aff.ID, p.ID, err)
		return entities.Payment{}
	}

	if _, err := u.affiliates.IncrementReferral(ctx, aff.ID, p.DiscountAmount); err != nil {
		log.Printf("[affiliate][usecase] counter update failed affiliate_id=%s err=%v", aff.ID, err)
		return entities.Payment{}
	}

	updated, err := u.payments.SetAffiliateUser(ctx, p.ID, aff.UserID)
	if err != nil {
		log.Printf("[affiliate][usecase] payment backfill failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}
	}
	log.Printf("[affiliate][usecase] credit success affiliate_id=%s payment_id=%s earnings=%d", aff.ID, p.ID, p.DiscountAmount)
	return updated
}

// sendConfirmation renders and sends the purchase confirmation. Failures
// are logged and never propagate: an unsent email must not make the
// gateway redeliver the event.
func (u *CheckoutUseCase) sendConfirmation(ctx context.Context, to, name string, p entities.Payment) {
	if u.email == nil {
		log.Printf("[email][usecase] sender not configured; skipping confirmation payment_id=%s", p.ID)
		return
	}
	to = strings.TrimSpace(to)
	if to == "" {
		log.Printf("[email][usecase] no recipient address; skipping confirmation payment_id=%s", p.ID)
		return
	}
	if name == "" {
		name = "there"
	}

	label := productLabel(p.ProductID)
	amount := formatAmount(p.Amount)
	msg := interfaces.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("Your %s purchase is confirmed", label),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Thanks for your purchase! Your payment of <strong>%s</strong> for <strong>%s</strong> went through and your access is now active.</p><p>Reference: %s</p>",
			name, amount, label, p.ID),
		Text: fmt.Sprintf("Hi %s,\n\nThanks for your purchase! Your payment of %s for %s went through and your access is now active.\n\nReference: %s\n",
			name, amount, label, p.ID),
	}
	if err := u.email.Send(ctx, msg); err != nil {
		log.Printf("[email][usecase] confirmation send failed to=%s payment_id=%s err=%v", to, p.ID, err)
		return
	}
	log.Printf("[email][usecase] confirmation sent to=%s payment_id=%s", to, p.ID)
}

// HandlePaymentIntentSucceeded marks the matching payment completed unless
// it already reached a terminal state. A missing payment is logged and
// acknowledged: failing would only make the gateway redeliver forever.
func (u *CheckoutUseCase) HandlePaymentIntentSucceeded(ctx context.Context, intentID string) error {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return ErrInvalidPaymentIntentID
	}

	p, err := u.payments.GetByPaymentIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		log.Printf("[checkout][usecase] intent succeeded for unknown payment intent_id=%s", intentID)
		return nil
	}
	switch p.Status {
	case entities.PaymentStatusCompleted:
		return nil
	case entities.PaymentStatusFailed:
		// Forward-only: a failed payment is never resurrected here.
		log.Printf("[checkout][usecase] intent succeeded for failed payment; ignoring payment_id=%s intent_id=%s", p.ID, intentID)
		return nil
	}

	if _, err := u.payments.UpdateStatus(ctx, p.ID, entities.PaymentStatusCompleted, time.Now().UTC()); err != nil {
		return err
	}
	log.Printf("[checkout][usecase] payment completed via intent payment_id=%s intent_id=%s", p.ID, intentID)
	return nil
}

// HandlePaymentIntentFailed marks the matching payment failed unless it
// already completed.
func (u *CheckoutUseCase) HandlePaymentIntentFailed(ctx context.Context, intentID string) error {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return ErrInvalidPaymentIntentID
	}

	p, err := u.payments.GetByPaymentIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		log.Printf("[checkout][usecase] intent failed for unknown payment intent_id=%s", intentID)
		return nil
	}
	if p.Status == entities.PaymentStatusCompleted {
		log.Printf("[checkout][usecase] intent failed after completion; ignoring payment_id=%s intent_id=%s", p.ID, intentID)
		return nil
	}

	if _, err := u.payments.UpdateStatus(ctx, p.ID, entities.PaymentStatusFailed, time.Time{}); err != nil {
		return err
	}
	log.Printf("[checkout][usecase] payment failed via intent payment_id=%s intent_id=%s", p.ID, intentID)
	return nil
}

func isEarlyAccessProduct(productID string) bool {
	_, ok := earlyAccessProducts[productID]
	return ok
}

func productLabel(productID string) string {
	if label, ok := productLabels[productID]; ok {
		return label
	}
	return productID
}

// formatAmount renders integer minor-currency units as decimal currency.
func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s$%d.%02d", sign, minor/100, minor%100)
}
