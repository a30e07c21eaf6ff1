// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/campus-hub/cliparse"
	"github.com/danielhkuo/campus-hub/filestore"
	"github.com/danielhkuo/campus-hub/handlers"
	"github.com/danielhkuo/campus-hub/middleware"
)

func NewRouter(db *sql.DB, store *filestore.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(db, cfg)
	materialHandler := handlers.NewMaterialHandler(db, store, cfg)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	qaHandler := handlers.NewQAHandler(db, cfg)
	newsHandler := handlers.NewNewsHandler(db, cfg)
	announcementHandler := handlers.NewAnnouncementHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Combined dashboard
	mux.HandleFunc("GET /{$}", middleware.WithLogging(homeHandler.Dashboard))

	// Study materials
	mux.HandleFunc("GET /materials", middleware.WithLogging(materialHandler.List))
	mux.HandleFunc("POST /materials", middleware.WithLogging(materialHandler.Create))
	mux.HandleFunc("GET /uploads/{filename}", middleware.WithLogging(materialHandler.Serve))

	// Surveys and voting
	mux.HandleFunc("GET /surveys", middleware.WithLogging(surveyHandler.List))
	mux.HandleFunc("POST /surveys", middleware.WithLogging(surveyHandler.Create))
	mux.HandleFunc("POST /surveys/{id}/vote", middleware.WithLogging(surveyHandler.Vote))

	// Q&A
	mux.HandleFunc("GET /qa", middleware.WithLogging(qaHandler.List))
	mux.HandleFunc("POST /qa", middleware.WithLogging(qaHandler.Ask))
	mux.HandleFunc("POST /qa/{id}/answer", middleware.WithLogging(qaHandler.Answer))

	// Tech news
	mux.HandleFunc("GET /tech", middleware.WithLogging(newsHandler.List))
	mux.HandleFunc("POST /tech", middleware.WithLogging(newsHandler.Post))

	// Announcements
	mux.HandleFunc("GET /announcements", middleware.WithLogging(announcementHandler.List))
	mux.HandleFunc("POST /announcements", middleware.WithLogging(announcementHandler.Post))

	return mux
}
