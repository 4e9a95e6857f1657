package main

import (
	_ "coursedesk/docs"
	"coursedesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Coursedesk Billing API
// @version         1.0
// @description     Checkout reconciliation and course asset backend (Stripe webhooks + DynamoDB + S3 + Resend).

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
