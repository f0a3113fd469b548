package auth

import (
	"context"

	"github.com/fieldhub/admin-backend/internal/models"
)

// Identity holds the authenticated caller attached to a request after
// the token gate. The role gate and handlers read it from context.
type Identity struct {
	AdminID     string
	Role        string
	Permissions models.Permissions
}

type identityKey struct{}

// WithIdentity returns a new context carrying the caller identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom retrieves the caller identity, or nil if absent.
func IdentityFrom(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
