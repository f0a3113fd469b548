package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fieldhub/admin-backend/internal/auth"
	"github.com/fieldhub/admin-backend/internal/http/respond"
	"github.com/fieldhub/admin-backend/internal/storage"
)

// Authenticate verifies the bearer token, loads the admin behind it,
// and attaches the caller identity to the request context. It must run
// before AllowRoles on any protected route.
func Authenticate(store storage.AdminStore, tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				respond.Error(w, http.StatusUnauthorized, "no token provided")
				return
			}

			claims, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					respond.Error(w, http.StatusUnauthorized, "token expired")
					return
				}
				respond.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			admin, err := store.FindByID(r.Context(), claims.Subject)
			if err != nil || !admin.IsActive {
				if err != nil && !errors.Is(err, storage.ErrNotFound) {
					respond.Error(w, http.StatusInternalServerError, "server error in authentication")
					return
				}
				respond.Error(w, http.StatusUnauthorized, "admin not found or inactive")
				return
			}

			identity := &auth.Identity{
				AdminID:     admin.ID,
				Role:        admin.Role,
				Permissions: admin.Permissions,
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// AllowRoles gates a route to the given roles. Depends on the identity
// placed in context by Authenticate.
func AllowRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.IdentityFrom(r.Context())
			if identity == nil {
				respond.Error(w, http.StatusUnauthorized, "no token provided")
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				respond.Error(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
