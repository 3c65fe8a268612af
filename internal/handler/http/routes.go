package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization; logout is lenient about bad cookies
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
	})

	// routes requiring a valid session
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)
		r.Get("/api/user", h.currentUser)
	})

	return router
}
