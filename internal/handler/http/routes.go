package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.With(h.verifySignature).Post("/interactions", h.interactions)

	router.Get("/version", h.getVersion)
	if h.health != nil {
		router.Get("/healthz", h.healthz)
	}
	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
