package http

import (
	"net/http"

	"github.com/Sigi3012/Midnight/internal/logger"
)

// healthz reports whether the store answers.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.health.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("store is unreachable")
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
