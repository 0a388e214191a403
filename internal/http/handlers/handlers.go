package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	appgames "github.com/preston-bernstein/game-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

const maxBodyBytes = 1 << 20

// Pinger is implemented by repositories that can report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler binds the game controller to HTTP.
type Handler struct {
	ctrl   *appgames.Controller
	pinger Pinger
	logger *slog.Logger
}

// NewHandler constructs a Handler. pinger may be nil, in which case the
// service always reports ready.
func NewHandler(ctrl *appgames.Controller, pinger Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		ctrl:   ctrl,
		pinger: pinger,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", "error", err)
			writeError(w, r, http.StatusServiceUnavailable, "store unavailable", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ListGames handles GET /games.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	env, err := h.ctrl.ListGames(r.Context())
	if err != nil {
		h.writeRepoError(w, r, err)
		return
	}
	writeEnvelope(w, env, h.logger)
}

// GetGame handles GET /games/{id}.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	env, err := h.ctrl.GetGame(r.Context(), id)
	if err != nil {
		h.writeRepoError(w, r, err)
		return
	}
	writeEnvelope(w, env, h.logger)
}

// CreateGame handles POST /games.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, ok := h.decodeGame(w, r)
	if !ok {
		return
	}
	env, err := h.ctrl.CreateGame(r.Context(), game)
	if err != nil {
		h.writeRepoError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "game created", logging.FieldGameID, env.Value)
	writeEnvelope(w, env, h.logger)
}

// UpdateGame handles PUT /games/{id}.
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	game, ok := h.decodeGame(w, r)
	if !ok {
		return
	}
	env, err := h.ctrl.UpdateGame(r.Context(), id, game)
	if err != nil {
		h.writeRepoError(w, r, err)
		return
	}
	writeEnvelope(w, env, h.logger)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeGame(w http.ResponseWriter, r *http.Request) (domaingames.Game, bool) {
	var game domaingames.Game
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&game); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid game payload", h.logger)
		return domaingames.Game{}, false
	}
	return game, true
}

// writeRepoError maps failures the controller propagates.
func (h *Handler) writeRepoError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, domaingames.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Warn(logger, "request aborted", "error", err)
		writeError(w, r, http.StatusServiceUnavailable, "request aborted", h.logger)
	default:
		logging.Error(logger, "repository failure", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
	}
}
