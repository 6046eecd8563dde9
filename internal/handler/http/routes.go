package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the complete route tree.
//
// Every request passes through tracing, logging and the authentication
// filter; the filter only resolves the principal and never rejects. Access
// control happens per route group: token issuance is public, the inventory
// API requires an authenticated principal, and user management plus tag
// administration additionally require the administrator permission.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.authenticate)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Post("/jwt", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Route("/ambiente", func(r chi.Router) {
				r.Get("/", h.listEnvironments)
				r.Post("/", h.createEnvironment)
				r.Get("/{id:[0-9]+}", h.getEnvironment)
				r.Put("/{id:[0-9]+}", h.updateEnvironment)
				r.Delete("/{id:[0-9]+}", h.deleteEnvironment)
			})

			r.Route("/item", func(r chi.Router) {
				r.Get("/", h.listItems)
				r.Post("/", h.createItem)
				r.Get("/{id:[0-9]+}", h.getItem)
				r.Put("/{id:[0-9]+}", h.updateItem)
				r.Delete("/{id:[0-9]+}", h.deleteItem)
				r.Post("/{id:[0-9]+}/movimentacao", h.moveItem)

				r.Route("/tipo", func(r chi.Router) {
					r.Get("/", h.listItemTypes)
					r.Post("/", h.createItemType)
					r.Get("/{id:[0-9]+}", h.getItemType)
					r.Put("/{id:[0-9]+}", h.updateItemType)
					r.Delete("/{id:[0-9]+}", h.deleteItemType)

					r.Route("/tag", func(r chi.Router) {
						r.Use(h.requireAdmin)
						r.Post("/", h.createItemTypeTag)
						r.Delete("/{id:[0-9]+}", h.deleteItemTypeTag)
					})
				})
			})

			r.Get("/movimentacao", h.listMovements)

			r.Route("/usuario", func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Get("/{id:[0-9]+}", h.getUser)
				r.Put("/{id:[0-9]+}", h.updateUser)
				r.Delete("/{id:[0-9]+}", h.deleteUser)
			})
		})
	})

	return router
}

// idParam reads a numeric URL parameter. Routes constrain the parameter to
// digits, so parsing only fails on overflow, which downstream lookups report
// as not found.
func idParam(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}
