package models

import "time"

// Admin captures an administrative account of the booking platform.
// The password hash never leaves the process through JSON.
type Admin struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"`
	Permissions  Permissions `json:"permissions"`
	IsActive     bool        `json:"isActive"`
	Phone        string      `json:"phone,omitempty"`
	Department   string      `json:"department,omitempty"`
	CreatedBy    *string     `json:"createdBy,omitempty"`
	LastLogin    *time.Time  `json:"lastLogin,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Capability is the per-resource access triple.
type Capability struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}

// Permissions is a fixed record of the five managed resources. Using a
// struct instead of a map keeps resource names typo-proof.
type Permissions struct {
	Users    Capability `json:"users"`
	Bookings Capability `json:"bookings"`
	Fields   Capability `json:"fields"`
	Courses  Capability `json:"courses"`
	Admins   Capability `json:"admins"`
}
