package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldhub/admin-backend/internal/auth"
	"github.com/fieldhub/admin-backend/internal/models"
	"github.com/fieldhub/admin-backend/internal/storage/storagetest"
)

func seedAdmin(t *testing.T, store *storagetest.Store, role string) models.Admin {
	t.Helper()
	admin, err := store.Insert(context.Background(), models.Admin{
		Name:        "Seed Admin",
		Email:       role + "@example.com",
		Role:        role,
		IsActive:    true,
		Permissions: models.DefaultPermissions(role),
	})
	require.NoError(t, err)
	return admin
}

func probeHandler(captured **auth.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = auth.IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	store := storagetest.New()
	tokens := auth.NewTokenManager("secret", "test", time.Hour)
	admin := seedAdmin(t, store, models.RoleAdmin)

	token, err := tokens.Generate(admin.ID, admin.Role)
	require.NoError(t, err)

	var identity *auth.Identity
	handler := Authenticate(store, tokens)(probeHandler(&identity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, admin.ID, identity.AdminID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
	assert.Equal(t, models.DefaultPermissions(models.RoleAdmin), identity.Permissions)
}

func TestAuthenticateRejectsMissingOrMalformedHeader(t *testing.T) {
	store := storagetest.New()
	tokens := auth.NewTokenManager("secret", "test", time.Hour)

	var identity *auth.Identity
	handler := Authenticate(store, tokens)(probeHandler(&identity))

	for _, header := range []string{"", "Bearer", "Bearer ", "tokenwithoutscheme"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Contains(t, rec.Body.String(), "no token provided", "header %q", header)
		assert.Nil(t, identity)
	}
}

func TestAuthenticateDistinguishesExpiredFromInvalid(t *testing.T) {
	store := storagetest.New()
	admin := seedAdmin(t, store, models.RoleAdmin)

	expiredTokens := auth.NewTokenManager("secret", "test", -time.Minute)
	expired, err := expiredTokens.Generate(admin.ID, admin.Role)
	require.NoError(t, err)

	var identity *auth.Identity
	handler := Authenticate(store, auth.NewTokenManager("secret", "test", time.Hour))(probeHandler(&identity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token expired")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthenticateRejectsInactiveOrMissingAdmin(t *testing.T) {
	store := storagetest.New()
	tokens := auth.NewTokenManager("secret", "test", time.Hour)
	admin := seedAdmin(t, store, models.RoleAdmin)

	var identity *auth.Identity
	handler := Authenticate(store, tokens)(probeHandler(&identity))

	// Token for an admin that no longer exists.
	ghost, err := tokens.Generate("00000000-0000-0000-0000-000000000000", models.RoleAdmin)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+ghost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin not found or inactive")

	// Deactivated admin with a perfectly valid token.
	store.Deactivate(admin.ID)
	token, err := tokens.Generate(admin.ID, admin.Role)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin not found or inactive")
	assert.Nil(t, identity)
}

func TestAllowRoles(t *testing.T) {
	gate := AllowRoles(models.RoleSuperAdmin)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Caller carries an allowed role.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := auth.WithIdentity(req.Context(), &auth.Identity{AdminID: "1", Role: models.RoleSuperAdmin})
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Authenticated but insufficient role: 403, distinct from 401.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx = auth.WithIdentity(req.Context(), &auth.Identity{AdminID: "2", Role: models.RoleModerator})
	rec = httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient permissions")

	// No identity at all: the gate cannot run without the auth gate.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
