package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	request "coursedesk/internal/adapter/http/dto/request"
	response "coursedesk/internal/adapter/http/dto/response"
	"coursedesk/internal/usecase"
	"coursedesk/pkg"
)

// CheckoutSimulationHandler fabricates a checkout-completed command and
// routes it through the exact reconciliation path a live webhook takes.
// Trusted admin tooling only; identifiers and timestamps are synthetic.

type CheckoutSimulationHandler struct {
	checkout usecase.ICheckoutUseCase
}

func NewCheckoutSimulationHandler(checkout usecase.ICheckoutUseCase) *CheckoutSimulationHandler {
	return &CheckoutSimulationHandler{checkout: checkout}
}

// SimulateCheckout godoc
// @Summary      Simulate a completed checkout
// @Description  Runs the reconciliation flow with a synthetic event.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CheckoutSimulationRequest  true  "Simulated checkout"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /admin/checkout/simulate [post]
func (h *CheckoutSimulationHandler) SimulateCheckout(c *gin.Context) {
	var payload request.CheckoutSimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainError("INVALID_SIMULATION_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Fresh synthetic identifiers per call: simulations are never
	// deduplicated against each other or against live events.
	seq := uuid.NewString()
	cmd := usecase.CheckoutCompleted{
		EventID:           fmt.Sprintf("evt_sim_%s", seq),
		UserID:            payload.UserID,
		ProductID:         payload.ProductID,
		AffiliateCode:     payload.AffiliateCode,
		OriginalPrice:     payload.FinalPrice + payload.DiscountAmount,
		FinalPrice:        payload.FinalPrice,
		DiscountAmount:    payload.DiscountAmount,
		CheckoutSessionID: fmt.Sprintf("cs_sim_%s", seq),
		PaymentIntentID:   fmt.Sprintf("pi_sim_%s", seq),
		CustomerEmail:     payload.CustomerEmail,
		CustomerName:      payload.CustomerName,
	}
	log.Printf("[checkout][handler] simulation start session_id=%s user_id=%s product_id=%s at=%s",
		cmd.CheckoutSessionID, cmd.UserID, cmd.ProductID, time.Now().UTC().Format(time.RFC3339))

	created, err := h.checkout.HandleCheckoutCompleted(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[checkout][handler] simulation failed session_id=%s err=%v", cmd.CheckoutSessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] simulation success payment_id=%s", created.ID)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutProduct), errors.Is(err, usecase.ErrInvalidCheckoutAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
