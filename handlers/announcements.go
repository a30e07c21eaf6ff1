// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/campus-hub/cliparse"
	"github.com/danielhkuo/campus-hub/middleware"
	"github.com/danielhkuo/campus-hub/models"
)

const announcementsPath = "/announcements"

type AnnouncementHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnnouncementHandler(db *sql.DB, cfg cliparse.Config) *AnnouncementHandler {
	return &AnnouncementHandler{db: db, cfg: cfg}
}

// List handles GET /announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := listAnnouncements(h.db, 0)
	if err != nil {
		slog.Error("failed to query announcements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnnouncementListResponse{
		Message:       middleware.PopFlash(w, r),
		Announcements: announcements,
	})
}

// Post handles POST /announcements
func (h *AnnouncementHandler) Post(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.FormValue("text"))
	postedBy := strings.TrimSpace(r.FormValue("posted_by"))

	if text == "" {
		middleware.FlashRedirect(w, r, announcementsPath, "Announcement text is required.")
		return
	}

	announcementID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO announcement (id, text, posted_by, created_at)
		VALUES ($1, $2, $3, $4)
	`, announcementID, text, postedBy, time.Now())

	if err != nil {
		slog.Error("failed to insert announcement", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post announcement")
		return
	}

	slog.Info("announcement posted", "announcement_id", announcementID)

	middleware.FlashRedirect(w, r, announcementsPath, "Announcement posted.")
}

// listAnnouncements returns announcements newest first, limited to n
// when n > 0
func listAnnouncements(db *sql.DB, n int) ([]models.Announcement, error) {
	query := `
		SELECT id, text, posted_by, created_at
		FROM announcement
		ORDER BY created_at DESC
	`

	var rows *sql.Rows
	var err error
	if n > 0 {
		rows, err = db.Query(query+" LIMIT $1", n)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Text, &a.PostedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}
