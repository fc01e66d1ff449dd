package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/warzonemc/mars/internal/api/handler"
	apimiddleware "github.com/warzonemc/mars/internal/api/middleware"
	"github.com/warzonemc/mars/internal/leaderboard"
	"github.com/warzonemc/mars/internal/middleware"
	"github.com/warzonemc/mars/internal/services/identity"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	PlayerStore     handler.PlayerStore
	IdentityService *identity.Service
	Leaderboard     *leaderboard.Leaderboard
	Stores          []handler.Pinger
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.PlayerStore, cfg.IdentityService)
	healthHandler := handler.NewHealthHandler(cfg.Stores...)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)

	api.HandleFunc("/players/{target}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{target}/alts", playerHandler.Alts).Methods(http.MethodGet)
	api.HandleFunc("/players/{target}/punishments", playerHandler.Punishments).Methods(http.MethodGet)
	api.HandleFunc("/players/{target}/session", playerHandler.Session).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	if cfg.Leaderboard != nil {
		leaderboardHandler := handler.NewLeaderboardHandler(cfg.Leaderboard)
		api.HandleFunc("/leaderboards/{score}", leaderboardHandler.Top).Methods(http.MethodGet)
	}

	return r
}
