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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.withIntegrity).Post("/api/device/register", h.register)
		r.With(h.withIntegrity).Post("/api/device/login", h.login)
		r.Get("/api/version", h.getRelayVersion)
	})

	// routes requiring a device session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/devices", h.listDevices)
		r.Get("/ws", h.serveSync)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
