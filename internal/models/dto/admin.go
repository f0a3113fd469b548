package dto

import "github.com/fieldhub/admin-backend/internal/models"

type CreateFirstAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdminRequest struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	Role        string              `json:"role"`
	Phone       string              `json:"phone"`
	Department  string              `json:"department"`
	Permissions *models.Permissions `json:"permissions"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CheckEmailRequest struct {
	Email string `json:"email"`
}

// UpdateAdminRequest carries the PATCH body. It has no password field
// on purpose: a password key in the payload is dropped at decode time.
type UpdateAdminRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"isActive"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
}

type AuthPayload struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

type EmailAvailability struct {
	Available bool `json:"available"`
}
