package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/projection"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// userProjection declares the user fields exposed by the user management
// endpoints. The password hash is not a projectable field at all, so it can
// never appear regardless of registration.
func (h *Handler) userProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("usuario", "id", "nome", "email", "dataNascimento", "permissao", "ativo")
}

// listUsers returns every registered user.
//
// GET /api/v1/usuario (administrators only)
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.userProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.ViewList(projection.List(users)))
}

// getUser returns one user by id.
//
// GET /api/v1/usuario/{id} (administrators only)
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), idParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.userProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(user))
}

// createUser registers a new user.
//
// POST /api/v1/usuario (administrators only)
//
// Responses:
//   - 201 with the created user
//   - 422 with a field map on invalid input or duplicate email
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	saved, err := h.services.UserService.Create(r.Context(), &user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.userProjection(r)
	_ = utils.WriteJSON(w, http.StatusCreated, registry.View(saved))
}

// updateUser rewrites the mutable fields of a user. Omitted fields keep
// their stored values.
//
// PUT /api/v1/usuario/{id} (administrators only)
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var changes models.User
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	user, err := h.services.UserService.Update(r.Context(), idParam(r, "id"), &changes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.userProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(user))
}

// deleteUser deactivates a user account. The record survives so historical
// references keep resolving.
//
// DELETE /api/v1/usuario/{id} (administrators only)
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.Deactivate(r.Context(), idParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
