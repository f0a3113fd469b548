// Package storagetest provides an in-memory AdminStore mirroring the
// Postgres store's behavior, for use in service and HTTP tests.
package storagetest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldhub/admin-backend/internal/models"
	"github.com/fieldhub/admin-backend/internal/storage"
)

var _ storage.AdminStore = (*Store)(nil)

// Store keeps admin records in a map guarded by a mutex.
type Store struct {
	mu     sync.Mutex
	admins map[string]models.Admin
	order  []string
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{admins: make(map[string]models.Admin)}
}

func (s *Store) Insert(_ context.Context, admin models.Admin) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins {
		if strings.EqualFold(existing.Email, admin.Email) {
			return models.Admin{}, storage.ErrAlreadyExists
		}
	}

	now := time.Now().UTC()
	admin.ID = uuid.NewString()
	admin.CreatedAt = now
	admin.UpdatedAt = now
	s.admins[admin.ID] = admin
	s.order = append(s.order, admin.ID)
	return admin, nil
}

func (s *Store) FindAll(_ context.Context) ([]models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Admin{}
	for _, id := range s.order {
		if admin, ok := s.admins[id]; ok {
			admin.PasswordHash = ""
			out = append(out, admin)
		}
	}
	return out, nil
}

func (s *Store) FindByID(_ context.Context, id string) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return models.Admin{}, storage.ErrNotFound
	}
	admin.PasswordHash = ""
	return admin, nil
}

func (s *Store) FindByEmail(_ context.Context, email string, includePassword bool) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, admin := range s.admins {
		if strings.EqualFold(admin.Email, email) {
			if !includePassword {
				admin.PasswordHash = ""
			}
			return admin, nil
		}
	}
	return models.Admin{}, storage.ErrNotFound
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.admins)), nil
}

func (s *Store) UpdateByID(_ context.Context, id string, patch storage.AdminPatch) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return models.Admin{}, storage.ErrNotFound
	}
	if patch.Email != nil {
		for otherID, other := range s.admins {
			if otherID != id && strings.EqualFold(other.Email, *patch.Email) {
				return models.Admin{}, storage.ErrAlreadyExists
			}
		}
		admin.Email = *patch.Email
	}
	if patch.Name != nil {
		admin.Name = *patch.Name
	}
	if patch.Role != nil {
		admin.Role = *patch.Role
	}
	if patch.IsActive != nil {
		admin.IsActive = *patch.IsActive
	}
	if patch.Phone != nil {
		admin.Phone = *patch.Phone
	}
	if patch.Department != nil {
		admin.Department = *patch.Department
	}
	admin.UpdatedAt = time.Now().UTC()
	s.admins[id] = admin

	admin.PasswordHash = ""
	return admin, nil
}

func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.admins, id)
	return nil
}

func (s *Store) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return storage.ErrNotFound
	}
	admin.LastLogin = &at
	s.admins[id] = admin
	return nil
}

// StoredHash returns the raw password hash kept for an admin id,
// bypassing the safe projection. Test-only accessor.
func (s *Store) StoredHash(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admins[id].PasswordHash
}

// Deactivate flips isActive off for an admin id. Test-only shortcut.
func (s *Store) Deactivate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return
	}
	admin.IsActive = false
	s.admins[id] = admin
}
