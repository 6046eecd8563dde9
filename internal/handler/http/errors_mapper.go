package http

import (
	"errors"
	"net/http"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/service"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrWrongCredentials: http.StatusUnauthorized,

	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrEnvironmentNotFound: http.StatusNotFound,
	service.ErrItemNotFound:        http.StatusNotFound,
	service.ErrItemTypeNotFound:    http.StatusNotFound,
	service.ErrTagNotFound:         http.StatusNotFound,

	service.ErrEnvironmentNotEmpty:  http.StatusConflict,
	service.ErrItemTypeInUse:        http.StatusConflict,
	service.ErrSameEnvironment:      http.StatusConflict,
	service.ErrItemHasMovements:     http.StatusConflict,
	service.ErrEnvironmentInHistory: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service-layer error into an HTTP response.
//
// Validation failures serialize their field map verbatim with a 422 status;
// mapped sentinels carry their message; everything else collapses into an
// opaque 500 so internal details never leak to clients.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		if writeErr := utils.WriteJSON(w, http.StatusUnprocessableEntity, validation.Fields); writeErr != nil {
			log.Err(writeErr).Msg("error writing validation response")
		}
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
		writeErrorMessage(w, status, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeErrorMessage(w, status, err.Error())
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	_ = utils.WriteJSON(w, status, map[string]string{"erro": message})
}
