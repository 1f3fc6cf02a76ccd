package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/build", h.getBuildInfo)
	})

	router.Route("/sync", func(r chi.Router) {
		r.Use(withGZip, h.auth, h.withDeviceID)

		r.Post("/upload", h.upload)
		r.Get("/download", h.download)
		r.Delete("/clear", h.clear)
		r.Get("/devices", h.devices)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
