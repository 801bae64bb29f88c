// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/pingbot/cliparse"
	"github.com/danielhkuo/pingbot/command"
	"github.com/danielhkuo/pingbot/handlers"
	"github.com/danielhkuo/pingbot/middleware"
	"github.com/danielhkuo/pingbot/presence"
	"github.com/danielhkuo/pingbot/roster"
)

// Services are the running bot's parts the API exposes. Source and
// Secondary may be nil.
type Services struct {
	Store      *roster.Store
	Source     roster.Source
	Dispatcher *command.Dispatcher
	Primary    presence.Source
	Secondary  presence.Source
}

func NewRouter(svc Services, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	rosterHandler := handlers.NewRosterHandler(svc.Store, svc.Source, cfg)
	commandHandler := handlers.NewCommandHandler(svc.Dispatcher)
	presenceHandler := handlers.NewPresenceHandler(svc.Primary, svc.Secondary)
	limiter := middleware.NewLimiter(cfg.CommandRPS, cfg.CommandBurst, cfg.AdminKeySalt)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Roster (reload requires X-Admin-Key)
	mux.HandleFunc("GET /sites", middleware.WithLogging(rosterHandler.ListSites))
	mux.HandleFunc("GET /sites/{site}/moderators", middleware.WithLogging(rosterHandler.GetModerators))
	mux.HandleFunc("POST /roster/reload", middleware.WithLogging(rosterHandler.Reload))

	// Commands (rate limited per client)
	mux.HandleFunc("POST /commands", middleware.WithLogging(middleware.RateLimit(limiter, commandHandler.Run)))

	// Presence
	mux.HandleFunc("GET /presence", middleware.WithLogging(presenceHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pingbot API v1"))
	})

	return mux
}
