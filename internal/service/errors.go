package service

import "errors"

// Domain errors surfaced by the lifecycle service. Handlers map these
// to HTTP status codes; anything else is an internal error.
var (
	ErrAlreadyBootstrapped = errors.New("admins already exist in the system")
	ErrEmailTaken          = errors.New("email already exists")
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrMissingEmail        = errors.New("email is required")
	ErrNotFound            = errors.New("admin not found")
	ErrSuperAdminDelete    = errors.New("cannot delete super admin")
)
