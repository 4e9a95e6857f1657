package entities

import "time"

// User is the buyer record owned by the platform's user directory.
//
// The reconciliation flow never creates users. It only flips HasAccess,
// stamps PurchaseDate and marks IsEarlyAccess on the first successful
// payment. A zero PurchaseDate means the user never completed a purchase.
//
// Storage model (DynamoDB):
//   - PK: id

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	HasAccess     bool      `json:"has_access"`
	IsEarlyAccess bool      `json:"is_early_access"`
	PurchaseDate  time.Time `json:"purchase_date,omitempty"`
}
