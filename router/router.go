// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/handlers"
	"github.com/danielhkuo/vote321/middleware"
	"github.com/danielhkuo/vote321/notify"
)

const (
	requestTimeout = 10 * time.Second
	// Admin setup sends one email per voter inside the request
	adminTimeout = 60 * time.Second
)

func NewRouter(store db.Store, n notify.Notifier, cfg cliparse.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)

	// Initialize handlers
	rnd := handlers.NewRender()
	votingHandler := handlers.NewVotingHandler(store, rnd)
	resultsHandler := handlers.NewResultsHandler(store, rnd)
	adminHandler := handlers.NewAdminHandler(store, n, rnd, cfg.BaseURL)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("3-2-1 voting app is running."))
	})

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))

		// Voting (token in query string)
		r.Get("/vote/{matchID}", votingHandler.ShowBallot)
		r.Post("/vote/{matchID}", votingHandler.SubmitVote)

		// Results (public)
		r.Get("/results/{matchID}", resultsHandler.GetResults)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdminKey(cfg.AdminKey))
		r.Use(chimw.Timeout(adminTimeout))

		r.Get("/setup", adminHandler.SetupForm)
		r.Post("/setup", adminHandler.Setup)
	})

	return r
}
