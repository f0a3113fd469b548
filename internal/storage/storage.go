package storage

import (
	"context"
	"errors"
	"time"

	"github.com/fieldhub/admin-backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// AdminPatch carries a partial update. Nil fields are left untouched.
// There is deliberately no password or permissions field here: neither
// is updatable after creation.
type AdminPatch struct {
	Name       *string
	Email      *string
	Role       *string
	IsActive   *bool
	Phone      *string
	Department *string
}

// AdminStore captures persistence operations needed by the service layer.
type AdminStore interface {
	Insert(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAll(ctx context.Context) ([]models.Admin, error)
	FindByID(ctx context.Context, id string) (models.Admin, error)
	// FindByEmail matches case-insensitively. The password hash is only
	// populated when includePassword is set; the login path is the sole
	// caller that needs it.
	FindByEmail(ctx context.Context, email string, includePassword bool) (models.Admin, error)
	Count(ctx context.Context) (int64, error)
	UpdateByID(ctx context.Context, id string, patch AdminPatch) (models.Admin, error)
	DeleteByID(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
