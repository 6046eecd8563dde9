package http

import (
	"encoding/json"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
)

// credentialsRequest is the body of a token issuance request.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// login exchanges an email/password pair for a signed JWT.
//
// POST /api/v1/jwt
//
// Responses:
//   - 200 {"token": "<jwt>"} on success
//   - 400 on undecodable JSON
//   - 401 when the credentials do not match an active account
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	token, err := h.services.AuthService.Authenticate(ctx, credentials.Email, credentials.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err = utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token.SignedString}); err != nil {
		log.Err(err).Msg("error writing token response")
	}
}
