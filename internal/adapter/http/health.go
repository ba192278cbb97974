package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleHealth reports database reachability. It answers 200 when the
// database responds and 503 otherwise; the body is the JSON status in both
// cases.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := h.health.Check(r.Context())

	code := http.StatusOK
	if !status.OK() {
		code = http.StatusServiceUnavailable
		h.logger.Warn("database unavailable",
			slog.String("database", status.Database),
			slog.String("error", status.Error))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
