package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fieldhub/admin-backend/internal/auth"
	"github.com/fieldhub/admin-backend/internal/config"
	"github.com/fieldhub/admin-backend/internal/http/handlers"
	"github.com/fieldhub/admin-backend/internal/middleware"
	"github.com/fieldhub/admin-backend/internal/models"
	"github.com/fieldhub/admin-backend/internal/service"
	"github.com/fieldhub/admin-backend/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.AdminStore) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	admins := service.NewAdminService(store, tokens)

	r := Router(store, tokens, admins, cfg.CORSOrigins)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Router builds the chi route tree. Split out from New so tests can
// mount it on httptest servers.
func Router(store storage.AdminStore, tokens *auth.TokenManager, admins *service.AdminService, corsOrigins []string) chi.Router {
	adminHandler := handlers.NewAdminHandler(admins)
	healthHandler := handlers.NewHealthHandler(time.Now())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(corsOrigins))

	r.Get("/api/health", healthHandler.Handle)

	r.Route("/api/admins", func(r chi.Router) {
		// public routes
		r.Post("/create-first-admin", adminHandler.CreateFirstAdmin)
		r.Post("/login", adminHandler.Login)
		r.Post("/check-email", adminHandler.CheckEmail)

		// protected routes: token gate first, role gate on top
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(store, tokens))

			r.Get("/", adminHandler.List)
			r.Get("/{adminID}", adminHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowRoles(models.RoleSuperAdmin))

				r.Post("/", adminHandler.Create)
				r.Patch("/{adminID}", adminHandler.Update)
				r.Delete("/{adminID}", adminHandler.Delete)
			})
		})
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
