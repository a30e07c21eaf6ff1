// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-hub/cliparse"
	"github.com/danielhkuo/campus-hub/middleware"
	"github.com/danielhkuo/campus-hub/models"
)

type HomeHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHomeHandler(db *sql.DB, cfg cliparse.Config) *HomeHandler {
	return &HomeHandler{db: db, cfg: cfg}
}

// Dashboard handles GET /. Read-only fan-out: the latest HomeLimit
// records of every resource, combined.
func (h *HomeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	materials, err := listMaterials(h.db, models.HomeLimit)
	if err != nil {
		slog.Error("failed to query materials", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	surveys, err := listSurveys(h.db, models.HomeLimit)
	if err != nil {
		slog.Error("failed to query surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions, err := listQuestions(h.db, models.HomeLimit)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	news, err := listNews(h.db, models.HomeLimit)
	if err != nil {
		slog.Error("failed to query tech news", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	announcements, err := listAnnouncements(h.db, models.HomeLimit)
	if err != nil {
		slog.Error("failed to query announcements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HomeResponse{
		Materials:     materials,
		Surveys:       surveys,
		Questions:     questions,
		News:          news,
		Announcements: announcements,
	})
}
