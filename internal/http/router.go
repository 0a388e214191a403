package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("GET /games", handler.ListGames)
	mux.HandleFunc("POST /games", handler.CreateGame)
	mux.HandleFunc("GET /games/{id}", handler.GetGame)
	mux.HandleFunc("PUT /games/{id}", handler.UpdateGame)
	return mux
}
