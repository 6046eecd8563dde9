package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/projection"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
)

// movementRequest is the body of a movement request; the target environment
// travels as a bare id.
type movementRequest struct {
	NextEnvironmentID int64 `json:"ambientePosterior"`
}

// movementProjection declares the fields for movement responses: the
// movement with shallow views of the item, both environments and the mover.
func (h *Handler) movementProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("movimentacao", "id", "dataMovimentacao", "itemMovimentado", "ambienteAnterior", "ambientePosterior", "movimentador").
		Set("item", "id", "tipo").
		Set("tipoItem", "id", "nome").
		Set("ambiente", "id", "descricao").
		Set("usuario", "id", "nome")
}

// listMovements returns the full movement history.
//
// GET /api/v1/movimentacao
func (h *Handler) listMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.services.MovementService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.movementProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.ViewList(projection.List(movements)))
}

// moveItem relocates an item into another environment on behalf of the
// request principal.
//
// POST /api/v1/item/{id}/movimentacao
//
// Responses:
//   - 201 with the recorded movement
//   - 404 when the item or target environment does not exist
//   - 409 when the item already occupies the target environment
func (h *Handler) moveItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body movementRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	principal, _ := utils.PrincipalFromContext(r.Context())
	movement, err := h.services.MovementService.Move(r.Context(), idParam(r, "id"), body.NextEnvironmentID, principal.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.movementProjection(r)
	_ = utils.WriteJSON(w, http.StatusCreated, registry.View(movement))
}
