package validate

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/fieldhub/admin-backend/internal/models"
	"github.com/fieldhub/admin-backend/internal/models/dto"
)

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations collects every violation found in a payload; callers get
// the full list, not just the first failure.
type Violations []FieldError

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	// Letters from any script plus spaces, matching names like "أحمد علي".
	nameRe  = regexp.MustCompile(`^[\p{L}\s]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[0-9\-\s()]+$`)
)

// FirstAdmin checks the bootstrap payload: the relaxed schema.
func FirstAdmin(req dto.CreateFirstAdminRequest) Violations {
	var v Violations
	v = checkName(v, req.Name, false)
	v = checkEmail(v, req.Email)
	v = checkPassword(v, req.Password, false)
	return v
}

// Admin checks the full create-admin payload.
func Admin(req dto.CreateAdminRequest) Violations {
	var v Violations
	v = checkName(v, req.Name, true)
	v = checkEmail(v, req.Email)
	v = checkPassword(v, req.Password, true)
	if req.Role != "" && !models.ValidRole(req.Role) {
		v = append(v, FieldError{Field: "role", Message: "Invalid role"})
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" && !phoneRe.MatchString(phone) {
		v = append(v, FieldError{Field: "phone", Message: "Invalid phone number"})
	}
	if len(strings.TrimSpace(req.Department)) > 100 {
		v = append(v, FieldError{Field: "department", Message: "Department name too long"})
	}
	return v
}

func checkName(v Violations, name string, strict bool) Violations {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(v, FieldError{Field: "name", Message: "Name is required"})
	}
	if n := len([]rune(name)); n < 2 || n > 50 {
		v = append(v, FieldError{Field: "name", Message: "Name must be between 2-50 characters"})
	}
	if strict && !nameRe.MatchString(name) {
		v = append(v, FieldError{Field: "name", Message: "Name can only contain letters and spaces"})
	}
	return v
}

func checkEmail(v Violations, email string) Violations {
	email = strings.TrimSpace(email)
	if email == "" {
		return append(v, FieldError{Field: "email", Message: "Email is required"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		v = append(v, FieldError{Field: "email", Message: "Please enter a valid email"})
	}
	return v
}

func checkPassword(v Violations, password string, strict bool) Violations {
	if password == "" {
		return append(v, FieldError{Field: "password", Message: "Password is required"})
	}
	if len(password) < 6 {
		v = append(v, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if strict && !hasMixedChars(password) {
		v = append(v, FieldError{Field: "password", Message: "Password must contain uppercase, lowercase, and numbers"})
	}
	return v
}

func hasMixedChars(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
