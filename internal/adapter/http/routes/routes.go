package routes

import (
	"log"
	"os"
	"strconv"

	_ "coursedesk/docs" // This will be auto-generated
	"coursedesk/internal/adapter/http/handlers"
	repository2 "coursedesk/internal/adapter/persistence/repository"
	"coursedesk/internal/infrastructure/database"
	email2 "coursedesk/internal/infrastructure/email"
	"coursedesk/internal/infrastructure/payments"
	"coursedesk/internal/infrastructure/storage"
	"coursedesk/internal/usecase"
	"coursedesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	affiliateRepo := repository2.NewAffiliateDynamoRepository(ddb)
	referralRepo := repository2.NewReferralDynamoRepository(ddb)
	eventRepo := repository2.NewWebhookEventDynamoRepository(ddb)

	var verifier interfaces.IWebhookVerifier
	stripeVerifier, err := payments.NewStripeWebhookVerifier(os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("Stripe webhook verifier not configured: %v", err)
	} else {
		verifier = stripeVerifier
	}

	var emailSender interfaces.IEmailSender
	resendSender, err := email2.NewResendSender(os.Getenv("RESEND_API_KEY"), os.Getenv("EMAIL_FROM"))
	if err != nil {
		log.Printf("Resend sender not configured: %v", err)
	} else {
		emailSender = resendSender
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, userRepo, affiliateRepo, referralRepo, eventRepo, emailSender)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo)
	affiliateUseCase := usecase.NewAffiliateUseCase(affiliateRepo)

	webhookHandler := handlers.NewWebhookHandler(verifier, checkoutUseCase)
	simulationHandler := handlers.NewCheckoutSimulationHandler(checkoutUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateUseCase)

	var assetHandler *handlers.AssetHandler
	assetStore, err := storage.NewS3AssetStore(storage.ConnectS3(), os.Getenv("ASSET_BUCKET"))
	if err != nil {
		log.Printf("Asset store not configured: %v", err)
	} else {
		assetHandler = handlers.NewAssetHandler(usecase.NewAssetUseCase(assetStore))
	}

	// Public + admin routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, webhookHandler, simulationHandler, paymentHandler, affiliateHandler)
	addAssetRoutes(v1, assetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
