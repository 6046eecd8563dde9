package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/projection"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// environmentRequest is the body of environment create/update requests.
type environmentRequest struct {
	Description string `json:"descricao"`
}

// environmentProjection declares the fields for list, create and update
// responses: the environment itself plus a shallow view of its registrant.
func (h *Handler) environmentProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("ambiente", "id", "descricao", "cadastrante").
		Set("usuario", "id", "nome")
}

// environmentDetailProjection additionally exposes the items currently held
// by the environment, each with its type.
func (h *Handler) environmentDetailProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("ambiente", "id", "descricao", "cadastrante", "itens").
		Set("item", "id", "tipo").
		Set("tipoItem", "id", "nome").
		Set("usuario", "id", "nome")
}

// listEnvironments returns every environment.
//
// GET /api/v1/ambiente
func (h *Handler) listEnvironments(w http.ResponseWriter, r *http.Request) {
	environments, err := h.services.EnvironmentService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.environmentProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.ViewList(projection.List(environments)))
}

// getEnvironment returns one environment with the items it holds.
//
// GET /api/v1/ambiente/{id}
func (h *Handler) getEnvironment(w http.ResponseWriter, r *http.Request) {
	environment, err := h.services.EnvironmentService.Get(r.Context(), idParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.environmentDetailProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(environment))
}

// createEnvironment registers a new environment on behalf of the request
// principal.
//
// POST /api/v1/ambiente
func (h *Handler) createEnvironment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body environmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	principal, _ := utils.PrincipalFromContext(r.Context())
	environment, err := h.services.EnvironmentService.Create(r.Context(), &models.Environment{
		Description: body.Description,
	}, principal.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.environmentProjection(r)
	_ = utils.WriteJSON(w, http.StatusCreated, registry.View(environment))
}

// updateEnvironment rewrites an environment's description.
//
// PUT /api/v1/ambiente/{id}
func (h *Handler) updateEnvironment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body environmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	environment, err := h.services.EnvironmentService.Update(r.Context(), idParam(r, "id"), body.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.environmentProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(environment))
}

// deleteEnvironment removes an empty environment.
//
// DELETE /api/v1/ambiente/{id}
//
// Responses:
//   - 204 on success
//   - 404 when the environment does not exist
//   - 409 while the environment still holds items
func (h *Handler) deleteEnvironment(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EnvironmentService.Delete(r.Context(), idParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
