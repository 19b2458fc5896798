package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/data/{bag}", h.listItems)
		r.Get("/api/data/{bag}/{item}", h.getItem)
		r.Put("/api/data/{bag}/{item}", h.putItem)
		r.Delete("/api/data/{bag}/{item}", h.deleteItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
