package routes

import (
	"coursedesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks   = "/webhooks"
	PathPayments   = "/payments"
	PathAffiliates = "/affiliates"
	PathAdmin      = "/admin"
)

func addCheckoutRoutes(
	rg *gin.RouterGroup,
	webhookHandler *handlers.WebhookHandler,
	simulationHandler *handlers.CheckoutSimulationHandler,
	paymentHandler *handlers.PaymentHandler,
	affiliateHandler *handlers.AffiliateHandler,
) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", webhookHandler.HandleStripeWebhook)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", paymentHandler.GetPaymentByID)
	}

	rg.GET("/users/:user_id/payments", paymentHandler.ListPaymentsByUser)

	affiliates := rg.Group(PathAffiliates)
	{
		affiliates.GET("/:code", affiliateHandler.GetAffiliateByCode)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/checkout/simulate", simulationHandler.SimulateCheckout)
	}
}
