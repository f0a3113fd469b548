package models

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// rolePermissions maps each role to its default capability matrix.
var rolePermissions = map[string]Permissions{
	RoleSuperAdmin: {
		Users:    Capability{Read: true, Write: true, Delete: true},
		Bookings: Capability{Read: true, Write: true, Delete: true},
		Fields:   Capability{Read: true, Write: true, Delete: true},
		Courses:  Capability{Read: true, Write: true, Delete: true},
		Admins:   Capability{Read: true, Write: true, Delete: true},
	},
	RoleAdmin: {
		Users:    Capability{Read: true, Write: true},
		Bookings: Capability{Read: true, Write: true, Delete: true},
		Fields:   Capability{Read: true, Write: true},
		Courses:  Capability{Read: true, Write: true},
		Admins:   Capability{Read: true},
	},
	RoleModerator: {
		Users:    Capability{Read: true},
		Bookings: Capability{Read: true, Write: true},
		Fields:   Capability{Read: true},
		Courses:  Capability{Read: true},
		Admins:   Capability{},
	},
}

// DefaultPermissions returns the capability matrix derived from role.
// Unknown roles get the zero value, i.e. no capabilities at all.
func DefaultPermissions(role string) Permissions {
	return rolePermissions[role]
}
