// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/handlers"
	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/voting"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	svc := voting.NewService(db)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(cfg)
	sessionHandler := handlers.NewSessionHandler(svc, cfg)
	locationHandler := handlers.NewLocationHandler(svc, cfg)
	voteHandler := handlers.NewVoteHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin login
	mux.HandleFunc("POST /auth/admin/login", middleware.WithLogging(adminHandler.Login))

	// Session management (admin operations)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(middleware.RequireAdmin(cfg, sessionHandler.Create)))
	mux.HandleFunc("GET /sessions", middleware.WithLogging(middleware.RequireAdmin(cfg, sessionHandler.ListAll)))
	mux.HandleFunc("POST /sessions/{id}/end", middleware.WithLogging(middleware.RequireAdmin(cfg, sessionHandler.End)))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(middleware.RequireAdmin(cfg, sessionHandler.Delete)))

	// Venue location (read is public, write is admin)
	mux.HandleFunc("GET /location", middleware.WithLogging(locationHandler.Get))
	mux.HandleFunc("POST /location", middleware.WithLogging(middleware.RequireAdmin(cfg, locationHandler.Set)))

	// Voting operations (voter identity required)
	mux.HandleFunc("POST /votes", middleware.WithLogging(middleware.RequireVoter(cfg, voteHandler.Submit)))
	mux.HandleFunc("GET /votes", middleware.WithLogging(middleware.RequireVoter(cfg, resultsHandler.AllBallots)))
	mux.HandleFunc("GET /sessions/{id}/my-ballot", middleware.WithLogging(middleware.RequireVoter(cfg, voteHandler.MyBallot)))
	mux.HandleFunc("GET /sessions/{id}/results", middleware.WithLogging(middleware.RequireVoter(cfg, resultsHandler.SessionResults)))

	// Current session (public)
	mux.HandleFunc("GET /sessions/active", middleware.WithLogging(sessionHandler.GetActive))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("venuevote API v1"))
	})

	return mux
}
