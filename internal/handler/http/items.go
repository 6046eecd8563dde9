package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/projection"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
)

// itemRequest is the body of item create/update requests. References travel
// as bare ids.
type itemRequest struct {
	TypeID        int64 `json:"tipo"`
	EnvironmentID int64 `json:"ambienteAtual"`
}

// itemProjection declares the fields for item responses: the item plus
// shallow views of its type, registrant and current environment.
func (h *Handler) itemProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("item", "id", "tipo", "cadastrante", "ambienteAtual").
		Set("tipoItem", "id", "nome").
		Set("usuario", "id", "nome").
		Set("ambiente", "id", "descricao")
}

// listItems returns every tracked item.
//
// GET /api/v1/item
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.ViewList(projection.List(items)))
}

// getItem returns one item by id.
//
// GET /api/v1/item/{id}
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.ItemService.Get(r.Context(), idParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(item))
}

// createItem registers a new item on behalf of the request principal.
//
// POST /api/v1/item
//
// Responses:
//   - 201 with the created item
//   - 422 with a field map when the type or environment reference is broken
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body itemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	principal, _ := utils.PrincipalFromContext(r.Context())
	item, err := h.services.ItemService.Create(r.Context(), body.TypeID, body.EnvironmentID, principal.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemProjection(r)
	_ = utils.WriteJSON(w, http.StatusCreated, registry.View(item))
}

// updateItem changes an item's type. Relocations go through the movement
// endpoint instead.
//
// PUT /api/v1/item/{id}
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body itemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), idParam(r, "id"), body.TypeID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(item))
}

// deleteItem removes an item.
//
// DELETE /api/v1/item/{id}
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ItemService.Delete(r.Context(), idParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
