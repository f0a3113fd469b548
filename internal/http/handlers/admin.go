package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldhub/admin-backend/internal/auth"
	"github.com/fieldhub/admin-backend/internal/http/respond"
	"github.com/fieldhub/admin-backend/internal/models/dto"
	"github.com/fieldhub/admin-backend/internal/service"
	"github.com/fieldhub/admin-backend/internal/validate"
)

// AdminHandler exposes the admin lifecycle over HTTP.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// CreateFirstAdmin bootstraps the initial super admin. Public route,
// only usable while no admins exist.
func (h *AdminHandler) CreateFirstAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFirstAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	admin, token, err := h.admins.CreateFirstAdmin(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "error creating first admin")
		return
	}
	respond.JSON(w, http.StatusCreated, "First admin created successfully", dto.AuthPayload{Token: token, Admin: admin})
}

// Login authenticates an admin and returns a fresh bearer token.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	admin, token, err := h.admins.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "login failed")
		return
	}
	respond.JSON(w, http.StatusOK, "Logged in successfully", dto.AuthPayload{Token: token, Admin: admin})
}

// CheckEmail reports email availability; a taken email is a normal response.
func (h *AdminHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	available, err := h.admins.CheckEmail(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, err, "check email failed")
		return
	}
	message := "Email already taken"
	if available {
		message = "Email is available"
	}
	respond.JSON(w, http.StatusOK, message, dto.EmailAvailability{Available: available})
}

// Create adds a subordinate admin. Reached only by super admins.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFrom(r.Context())
	if identity == nil {
		respond.Error(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	admin, token, err := h.admins.CreateAdmin(r.Context(), identity.AdminID, req)
	if err != nil {
		h.writeError(w, err, "error creating admin")
		return
	}
	log.Printf("New admin created: %s", admin.Email)
	respond.JSON(w, http.StatusCreated, "Admin created successfully", dto.AuthPayload{Token: token, Admin: admin})
}

// List returns every admin account.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admins.GetAll(r.Context())
	if err != nil {
		h.writeError(w, err, "error fetching admins")
		return
	}
	respond.JSON(w, http.StatusOK, "ok", admins)
}

// Get returns a single admin account by id.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	admin, err := h.admins.GetOne(r.Context(), chi.URLParam(r, "adminID"))
	if err != nil {
		h.writeError(w, err, "error fetching admin")
		return
	}
	respond.JSON(w, http.StatusOK, "ok", admin)
}

// Update applies a partial patch to an admin account.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	admin, err := h.admins.Update(r.Context(), chi.URLParam(r, "adminID"), req)
	if err != nil {
		h.writeError(w, err, "error updating admin")
		return
	}
	respond.JSON(w, http.StatusOK, "Updated Successfully", admin)
}

// Delete removes an admin account. Super admins are protected.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.admins.Delete(r.Context(), chi.URLParam(r, "adminID")); err != nil {
		h.writeError(w, err, "error deleting admin")
		return
	}
	respond.JSON(w, http.StatusOK, "Deleted Successfully", nil)
}

// writeError maps domain errors to status codes; anything unrecognized
// becomes a logged 500 with a generic message.
func (h *AdminHandler) writeError(w http.ResponseWriter, err error, logPrefix string) {
	var violations validate.Violations
	if errors.As(err, &violations) {
		respond.ValidationError(w, violations)
		return
	}

	switch {
	case errors.Is(err, service.ErrAlreadyBootstrapped),
		errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrMissingEmail):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respond.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccountDeactivated),
		errors.Is(err, service.ErrSuperAdminDelete):
		respond.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respond.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s: %v", logPrefix, err)
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
