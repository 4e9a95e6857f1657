package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v74"

	"coursedesk/internal/usecase"
	"coursedesk/internal/usecase/interfaces"
	"coursedesk/pkg"
)

// WebhookHandler receives signed payment-gateway events.
//
// Only three event types are acted on: checkout.session.completed drives
// the reconciliation flow, the two payment_intent lifecycle events apply
// narrow status updates. Everything else is acknowledged and ignored so
// the gateway stops redelivering.

type WebhookHandler struct {
	verifier interfaces.IWebhookVerifier
	checkout usecase.ICheckoutUseCase
}

func NewWebhookHandler(verifier interfaces.IWebhookVerifier, checkout usecase.ICheckoutUseCase) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, checkout: checkout}
}

// HandleStripeWebhook godoc
// @Summary      Stripe webhook endpoint
// @Description  Verifies the event signature and runs checkout reconciliation.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Webhook signature"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	if h.verifier == nil {
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook secret not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		log.Printf("[webhook][handler] signature rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] event verified event_id=%s type=%s", event.ID, event.Type)

	switch event.Type {
	case "checkout.session.completed":
		cmd, err := checkoutCommandFromEvent(event)
		if err != nil {
			log.Printf("[webhook][handler] event parse failed event_id=%s err=%v", event.ID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_EVENT", "Malformed checkout session event", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if _, err := h.checkout.HandleCheckoutCompleted(c.Request.Context(), cmd); err != nil {
			// A fatal-tier failure: answer 5xx so the gateway redelivers.
			log.Printf("[webhook][handler] reconciliation failed event_id=%s err=%v", event.ID, err)
			appErr := pkg.NewDomainError("RECONCILIATION_FAILED", "Checkout reconciliation failed", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

	case "payment_intent.succeeded":
		h.handleIntentEvent(c, event, h.checkout.HandlePaymentIntentSucceeded)
		return

	case "payment_intent.payment_failed":
		h.handleIntentEvent(c, event, h.checkout.HandlePaymentIntentFailed)
		return

	default:
		log.Printf("[webhook][handler] ignoring event event_id=%s type=%s", event.ID, event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) handleIntentEvent(c *gin.Context, event stripe.Event, apply func(ctx context.Context, intentID string) error) {
	intentID, err := intentIDFromEvent(event)
	if err != nil {
		log.Printf("[webhook][handler] intent event parse failed event_id=%s err=%v", event.ID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_EVENT", "Malformed payment intent event", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := apply(c.Request.Context(), intentID); err != nil {
		log.Printf("[webhook][handler] intent update failed event_id=%s intent_id=%s err=%v", event.ID, intentID, err)
		appErr := pkg.NewDomainError("INTENT_UPDATE_FAILED", "Payment intent update failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// checkoutCommandFromEvent translates a verified checkout.session.completed
// event into the orchestrator command. Pricing fields come from the session
// metadata written at checkout creation; the provider-reported customer
// email wins over metadata.
func checkoutCommandFromEvent(event stripe.Event) (usecase.CheckoutCompleted, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return usecase.CheckoutCompleted{}, err
	}

	meta := session.Metadata
	cmd := usecase.CheckoutCompleted{
		EventID:           event.ID,
		UserID:            meta["userId"],
		ProductID:         meta["productId"],
		AffiliateCode:     meta["affiliateCode"],
		OriginalPrice:     metaInt(meta, "originalPrice"),
		FinalPrice:        metaInt(meta, "finalPrice"),
		DiscountAmount:    metaInt(meta, "discountAmount"),
		CheckoutSessionID: session.ID,
		CustomerEmail:     meta["customerEmail"],
		CustomerName:      meta["customerName"],
	}
	if session.PaymentIntent != nil {
		cmd.PaymentIntentID = session.PaymentIntent.ID
	}
	if session.CustomerDetails != nil {
		if session.CustomerDetails.Email != "" {
			cmd.CustomerEmail = session.CustomerDetails.Email
		}
		if session.CustomerDetails.Name != "" {
			cmd.CustomerName = session.CustomerDetails.Name
		}
	}
	if cmd.FinalPrice == 0 {
		cmd.FinalPrice = session.AmountTotal
	}
	if cmd.ProductID == "" {
		return usecase.CheckoutCompleted{}, errors.New("session metadata missing productId")
	}
	return cmd, nil
}

func intentIDFromEvent(event stripe.Event) (string, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return "", err
	}
	if intent.ID == "" {
		return "", errors.New("payment intent event missing id")
	}
	return intent.ID, nil
}

func metaInt(meta map[string]string, key string) int64 {
	v, err := strconv.ParseInt(meta[key], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
