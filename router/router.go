// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ippon-board/cliparse"
	"github.com/danielhkuo/ippon-board/handlers"
	"github.com/danielhkuo/ippon-board/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(db)
	votingHandler := handlers.NewVotingHandler(db)
	pageHandler := handlers.NewPageHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// JSON API. Mounted without a method so CORS preflights reach the
	// CORS handler before method matching. Unknown paths and methods get
	// JSON errors like every other API response.
	api := http.NewServeMux()
	api.HandleFunc("GET /api/status", middleware.WithLogging(sessionHandler.GetStatus))
	api.HandleFunc("POST /api/reset", middleware.WithLogging(sessionHandler.Reset))
	api.HandleFunc("POST /api/vote", middleware.WithLogging(votingHandler.SubmitVote))
	api.HandleFunc("POST /api/yo", middleware.WithLogging(votingHandler.RecordYo))
	api.HandleFunc("GET /api/yo/latest", middleware.WithLogging(votingHandler.GetLatestYo))
	mux.Handle("/api/", middleware.CORS(cfg.CORSOrigins)(middleware.JSONFallback(api)))

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Display))
	mux.HandleFunc("GET /judge/{number}", middleware.WithLogging(pageHandler.JudgePage))
	mux.Handle("GET /static/", pageHandler.Static())

	return mux
}
