package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	appgames "github.com/preston-bernstein/game-catalog-service/internal/app/games"
	"github.com/preston-bernstein/game-catalog-service/internal/http/middleware"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeEnvelope writes the envelope payload as JSON, or only its status when it carries none.
func writeEnvelope[T any](w http.ResponseWriter, env appgames.Envelope[T], logger *slog.Logger) {
	if !env.HasValue() {
		w.WriteHeader(env.Status)
		return
	}
	writeJSON(w, env.Status, env.Value, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
