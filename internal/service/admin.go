package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fieldhub/admin-backend/internal/auth"
	"github.com/fieldhub/admin-backend/internal/models"
	"github.com/fieldhub/admin-backend/internal/models/dto"
	"github.com/fieldhub/admin-backend/internal/storage"
	"github.com/fieldhub/admin-backend/internal/validate"
)

// AdminService orchestrates the admin account lifecycle: bootstrap,
// login, and super-admin managed CRUD.
type AdminService struct {
	store  storage.AdminStore
	tokens *auth.TokenManager
}

// NewAdminService constructs the service.
func NewAdminService(store storage.AdminStore, tokens *auth.TokenManager) *AdminService {
	return &AdminService{store: store, tokens: tokens}
}

// CreateFirstAdmin bootstraps the very first account as a super admin.
// It only succeeds while the store holds no admins at all.
func (s *AdminService) CreateFirstAdmin(ctx context.Context, req dto.CreateFirstAdminRequest) (models.Admin, string, error) {
	if v := validate.FirstAdmin(req); len(v) > 0 {
		return models.Admin{}, "", v
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return models.Admin{}, "", err
	}
	if count > 0 {
		return models.Admin{}, "", ErrAlreadyBootstrapped
	}

	admin := models.Admin{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	return s.createCore(ctx, admin, req.Password, nil)
}

// CreateAdmin creates a subordinate account on behalf of callerID.
// The role gate guarantees the caller is a super admin by the time
// this runs.
func (s *AdminService) CreateAdmin(ctx context.Context, callerID string, req dto.CreateAdminRequest) (models.Admin, string, error) {
	if v := validate.Admin(req); len(v) > 0 {
		return models.Admin{}, "", v
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	admin := models.Admin{
		Name:       strings.TrimSpace(req.Name),
		Email:      normalizeEmail(req.Email),
		Role:       role,
		IsActive:   true,
		Phone:      strings.TrimSpace(req.Phone),
		Department: strings.TrimSpace(req.Department),
		CreatedBy:  &callerID,
	}
	return s.createCore(ctx, admin, req.Password, req.Permissions)
}

// createCore is shared by both creation paths: permission defaults,
// password hashing, insert, and token issuance.
func (s *AdminService) createCore(ctx context.Context, admin models.Admin, password string, explicit *models.Permissions) (models.Admin, string, error) {
	if explicit != nil {
		admin.Permissions = *explicit
	} else {
		admin.Permissions = models.DefaultPermissions(admin.Role)
	}

	// Fast-path duplicate check; the unique index on LOWER(email) is
	// the real authority and maps to the same error below.
	if _, err := s.store.FindByEmail(ctx, admin.Email, false); err == nil {
		return models.Admin{}, "", ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.Admin{}, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Admin{}, "", err
	}
	admin.PasswordHash = hash

	created, err := s.store.Insert(ctx, admin)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.Admin{}, "", ErrEmailTaken
		}
		return models.Admin{}, "", err
	}

	token, err := s.tokens.Generate(created.ID, created.Role)
	if err != nil {
		return models.Admin{}, "", err
	}
	created.PasswordHash = ""
	return created, token, nil
}

// Login authenticates by email and password and issues a fresh token.
// Unknown email and wrong password produce the same error on purpose.
func (s *AdminService) Login(ctx context.Context, req dto.LoginRequest) (models.Admin, string, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.Admin{}, "", ErrMissingCredentials
	}

	admin, err := s.store.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, "", ErrInvalidCredentials
		}
		return models.Admin{}, "", err
	}
	if !auth.CheckPassword(req.Password, admin.PasswordHash) {
		return models.Admin{}, "", ErrInvalidCredentials
	}
	if !admin.IsActive {
		return models.Admin{}, "", ErrAccountDeactivated
	}

	now := time.Now().UTC()
	if err := s.store.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return models.Admin{}, "", err
	}
	admin.LastLogin = &now

	token, err := s.tokens.Generate(admin.ID, admin.Role)
	if err != nil {
		return models.Admin{}, "", err
	}
	admin.PasswordHash = ""
	return admin, token, nil
}

// GetAll lists every admin account.
func (s *AdminService) GetAll(ctx context.Context) ([]models.Admin, error) {
	return s.store.FindAll(ctx)
}

// GetOne fetches a single admin by id.
func (s *AdminService) GetOne(ctx context.Context, id string) (models.Admin, error) {
	admin, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Admin{}, ErrNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// Update applies a partial patch. Password changes are not supported
// through this path; the request type cannot even carry one.
func (s *AdminService) Update(ctx context.Context, id string, req dto.UpdateAdminRequest) (models.Admin, error) {
	patch := storage.AdminPatch{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		IsActive:   req.IsActive,
		Phone:      req.Phone,
		Department: req.Department,
	}
	if patch.Email != nil {
		normalized := normalizeEmail(*patch.Email)
		patch.Email = &normalized
	}

	admin, err := s.store.UpdateByID(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return models.Admin{}, ErrNotFound
		case errors.Is(err, storage.ErrAlreadyExists):
			return models.Admin{}, ErrEmailTaken
		}
		return models.Admin{}, err
	}
	return admin, nil
}

// CheckEmail reports whether an email is still available. A taken
// email is a normal outcome, not an error.
func (s *AdminService) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, ErrMissingEmail
	}
	if _, err := s.store.FindByEmail(ctx, email, false); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Delete removes an admin account. Super admins cannot be deleted.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	admin, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if admin.Role == models.RoleSuperAdmin {
		return ErrSuperAdminDelete
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
