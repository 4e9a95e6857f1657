package interfaces

import (
	"context"
	"time"

	"coursedesk/internal/domain/entities"
)

// IUserRepository abstracts the platform user directory.
//
// The reconciliation flow only reads users and flips their entitlement;
// user creation belongs to the auth backend.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GrantAccess(ctx context.Context, id string, purchaseDate time.Time, earlyAccess bool) (entities.User, error)
}
