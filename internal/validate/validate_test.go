package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldhub/admin-backend/internal/models/dto"
)

func fields(v Violations) []string {
	out := make([]string, len(v))
	for i, fe := range v {
		out[i] = fe.Field
	}
	return out
}

func TestFirstAdminValid(t *testing.T) {
	v := FirstAdmin(dto.CreateFirstAdminRequest{
		Name:     "Root Admin",
		Email:    "root@example.com",
		Password: "secret",
	})
	assert.Empty(t, v)
}

func TestFirstAdminCollectsAllViolations(t *testing.T) {
	v := FirstAdmin(dto.CreateFirstAdminRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "tiny",
	})
	assert.ElementsMatch(t, []string{"name", "email", "password"}, fields(v))
	assert.Contains(t, v.Error(), "validation failed")
}

func TestFirstAdminRelaxedRules(t *testing.T) {
	// The bootstrap schema skips the name charset and password
	// complexity rules the full schema enforces.
	v := FirstAdmin(dto.CreateFirstAdminRequest{
		Name:     "R2-D2",
		Email:    "droid@example.com",
		Password: "lowercaseonly",
	})
	assert.Empty(t, v)
}

func TestAdminValid(t *testing.T) {
	v := Admin(dto.CreateAdminRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Password:   "Str0ngpass",
		Role:       "moderator",
		Phone:      "+20 (100) 123-4567",
		Department: "Operations",
	})
	assert.Empty(t, v)
}

func TestAdminUnicodeName(t *testing.T) {
	v := Admin(dto.CreateAdminRequest{
		Name:     "أحمد علي",
		Email:    "ahmed@example.com",
		Password: "Str0ngpass",
	})
	assert.Empty(t, v)
}

func TestAdminNamePattern(t *testing.T) {
	v := Admin(dto.CreateAdminRequest{
		Name:     "Jane99",
		Email:    "jane@example.com",
		Password: "Str0ngpass",
	})
	require.Len(t, v, 1)
	assert.Equal(t, "name", v[0].Field)
	assert.Equal(t, "Name can only contain letters and spaces", v[0].Message)
}

func TestAdminPasswordComplexity(t *testing.T) {
	for _, password := range []string{"alllower1", "ALLUPPER1", "NoDigits"} {
		v := Admin(dto.CreateAdminRequest{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Password: password,
		})
		require.Len(t, v, 1, "password %q", password)
		assert.Equal(t, "password", v[0].Field)
	}
}

func TestAdminOptionalFields(t *testing.T) {
	base := dto.CreateAdminRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Str0ngpass",
	}

	bad := base
	bad.Role = "owner"
	v := Admin(bad)
	require.Len(t, v, 1)
	assert.Equal(t, "role", v[0].Field)

	bad = base
	bad.Phone = "call me maybe"
	v = Admin(bad)
	require.Len(t, v, 1)
	assert.Equal(t, "phone", v[0].Field)

	bad = base
	for i := 0; i < 11; i++ {
		bad.Department += "operations!"
	}
	v = Admin(bad)
	require.Len(t, v, 1)
	assert.Equal(t, "department", v[0].Field)

	// Absent optionals stay valid.
	assert.Empty(t, Admin(base))
}
