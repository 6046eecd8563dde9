package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/projection"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// itemTypeRequest is the body of item type create/update requests. Tags may
// be attached in the same call as the type itself.
type itemTypeRequest struct {
	Name string                `json:"nome"`
	Tags []*models.ItemTypeTag `json:"tagsAnexadas"`
}

// tagRequest is the body of a tag creation request; the owning item type
// travels as a bare id.
type tagRequest struct {
	Header     string `json:"cabecalho"`
	Body       string `json:"corpo"`
	Kind       string `json:"tipo"`
	ItemTypeID int64  `json:"tipoItem"`
}

// itemTypeProjection declares the fields for list, create and update
// responses: the type with its tags.
func (h *Handler) itemTypeProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("tipoItem", "id", "nome", "tagsAnexadas").
		Set("tipoItemTag", "id", "cabecalho", "corpo", "tipo")
}

// itemTypeDetailProjection additionally exposes the registrant and the
// items registered under the type.
func (h *Handler) itemTypeDetailProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("tipoItem", "id", "nome", "cadastrante", "tagsAnexadas", "itensAnexados").
		Set("tipoItemTag", "id", "cabecalho", "corpo", "tipo").
		Set("item", "id").
		Set("usuario", "id", "nome")
}

// tagProjection declares the fields for tag creation responses.
func (h *Handler) tagProjection(r *http.Request) *projection.Registry {
	return projection.NewRegistry(logger.FromRequest(r)).
		Set("tipoItemTag", "id", "cabecalho", "corpo", "tipo")
}

// listItemTypes returns every item type with its tags.
//
// GET /api/v1/item/tipo
func (h *Handler) listItemTypes(w http.ResponseWriter, r *http.Request) {
	itemTypes, err := h.services.ItemTypeService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemTypeProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.ViewList(projection.List(itemTypes)))
}

// getItemType returns one item type with its tags and registered items.
//
// GET /api/v1/item/tipo/{id}
func (h *Handler) getItemType(w http.ResponseWriter, r *http.Request) {
	itemType, err := h.services.ItemTypeService.Get(r.Context(), idParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemTypeDetailProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(itemType))
}

// createItemType registers a new item type, with any tags carried on the
// request, on behalf of the request principal.
//
// POST /api/v1/item/tipo
func (h *Handler) createItemType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body itemTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	principal, _ := utils.PrincipalFromContext(r.Context())
	itemType, err := h.services.ItemTypeService.Create(r.Context(), &models.ItemType{
		Name:         body.Name,
		AttachedTags: body.Tags,
	}, principal.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemTypeProjection(r)
	_ = utils.WriteJSON(w, http.StatusCreated, registry.View(itemType))
}

// updateItemType renames an item type.
//
// PUT /api/v1/item/tipo/{id}
func (h *Handler) updateItemType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body itemTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	itemType, err := h.services.ItemTypeService.Update(r.Context(), idParam(r, "id"), body.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.itemTypeProjection(r)
	_ = utils.WriteJSON(w, http.StatusOK, registry.View(itemType))
}

// deleteItemType removes an item type no item references.
//
// DELETE /api/v1/item/tipo/{id}
//
// Responses:
//   - 204 on success
//   - 404 when the type does not exist
//   - 409 while items are still registered under it
func (h *Handler) deleteItemType(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ItemTypeService.Delete(r.Context(), idParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createItemTypeTag attaches a tag to an existing item type.
//
// POST /api/v1/item/tipo/tag (administrators only)
func (h *Handler) createItemTypeTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body tagRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	tag, err := h.services.ItemTypeService.AddTag(r.Context(), body.ItemTypeID, &models.ItemTypeTag{
		Header: body.Header,
		Body:   body.Body,
		Kind:   body.Kind,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	registry := h.tagProjection(r)
	_ = utils.WriteJSON(w, http.StatusCreated, registry.View(tag))
}

// deleteItemTypeTag detaches a tag from its item type.
//
// DELETE /api/v1/item/tipo/tag/{id} (administrators only)
func (h *Handler) deleteItemTypeTag(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ItemTypeService.DeleteTag(r.Context(), idParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
