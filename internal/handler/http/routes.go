package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/token", h.issueToken)
	})

	// sync contract, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync/check", h.checkChanges)
		r.Get("/api/sync/{table}/changes", h.getChanges)
		r.Post("/api/sync/{table}/batch", h.batchUpsert)
		r.Delete("/api/sync/{table}/{id}", h.deleteWithVersion)
	})

	return router
}
