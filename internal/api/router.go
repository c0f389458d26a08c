package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/botarena/internal/api/handler"
	apimiddleware "github.com/mcoot/botarena/internal/api/middleware"
	"github.com/mcoot/botarena/internal/api/response"
	"github.com/mcoot/botarena/internal/middleware"
	"github.com/mcoot/botarena/internal/services/fight"
	"github.com/mcoot/botarena/internal/services/profile"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	ProfileService  *profile.Service
	FightController *fight.Controller

	// StaticDir, when set, is served at / for the browser client
	StaticDir string
	// EnableReset registers POST /reset-profiles
	EnableReset bool
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	profileHandler := handler.NewProfileHandler(cfg.ProfileService, cfg.Logger)
	fightHandler := handler.NewFightHandler(cfg.FightController, cfg.Logger)

	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/create-profile", profileHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/profile/{id}", profileHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/allocate-points", profileHandler.Allocate).Methods(http.MethodPost)
	r.HandleFunc("/spend-points", profileHandler.Spend).Methods(http.MethodPost)
	r.HandleFunc("/fight", fightHandler.Fight).Methods(http.MethodPost)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	if cfg.EnableReset {
		r.HandleFunc("/reset-profiles", profileHandler.Reset).Methods(http.MethodPost)
	}

	// Registered last so API routes take precedence
	if cfg.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir))).Methods(http.MethodGet, http.MethodHead)
	}

	// CORS wraps the router so preflight requests never reach route matching
	return middleware.CORS(r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
