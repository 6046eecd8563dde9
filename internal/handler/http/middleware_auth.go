package http

import (
	"net/http"
	"regexp"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/internal/utils"
	"github.com/Mateus-A-Soares/Instoc/models"
)

// bearerTokenPattern matches a well-formed bearer Authorization header. The
// capture group holds the compact token: base64url segments separated by
// dots.
var bearerTokenPattern = regexp.MustCompile(`^Bearer ([\w.\-]+)$`)

// authenticate resolves the request principal from the Authorization header.
//
// This middleware never rejects a request. A missing header, a malformed
// header, a bad signature or expired claims all degrade the request to
// anonymous and pass it downstream; route guards ([Handler.requireAuth],
// [Handler.requireAdmin]) decide what anonymous requests may reach. This
// keeps authentication (who are you) strictly separated from authorization
// (what may you do), and guarantees a forged token can never crash or
// short-circuit the pipeline ahead of the guards.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		match := bearerTokenPattern.FindStringSubmatch(authHeader)
		if match == nil {
			log.Debug().Msg("malformed Authorization header, proceeding as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), match[1])
		if err != nil {
			log.Debug().Err(err).Msg("token rejected, proceeding as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithPrincipal(r.Context(), token.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth guards routes that need an authenticated principal. Anonymous
// requests are rejected with 401.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.PrincipalFromContext(r.Context()); !ok {
			writeErrorMessage(w, http.StatusUnauthorized, "autenticação necessária")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin guards routes restricted to administrators. Anonymous
// requests get 401; authenticated non-administrators get 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.PrincipalFromContext(r.Context())
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, "autenticação necessária")
			return
		}
		if principal.Permission != models.PermissionAdministrator {
			writeErrorMessage(w, http.StatusForbidden, "permissão de administrador necessária")
			return
		}
		next.ServeHTTP(w, r)
	})
}
