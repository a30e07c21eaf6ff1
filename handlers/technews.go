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

const techPath = "/tech"

type NewsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewNewsHandler(db *sql.DB, cfg cliparse.Config) *NewsHandler {
	return &NewsHandler{db: db, cfg: cfg}
}

// List handles GET /tech
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	news, err := listNews(h.db, 0)
	if err != nil {
		slog.Error("failed to query tech news", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewsListResponse{
		Message: middleware.PopFlash(w, r),
		News:    news,
	})
}

// Post handles POST /tech. The link is stored verbatim; no URL format
// validation.
func (h *NewsHandler) Post(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.FormValue("title"))
	link := strings.TrimSpace(r.FormValue("link"))
	postedBy := strings.TrimSpace(r.FormValue("posted_by"))

	if title == "" || link == "" {
		middleware.FlashRedirect(w, r, techPath, "Title and link are required.")
		return
	}

	newsID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO tech_news (id, title, link, posted_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, newsID, title, link, postedBy, time.Now())

	if err != nil {
		slog.Error("failed to insert tech news", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post tech news")
		return
	}

	slog.Info("tech news posted", "news_id", newsID)

	middleware.FlashRedirect(w, r, techPath, "Tech news posted.")
}

// listNews returns tech news newest first, limited to n when n > 0
func listNews(db *sql.DB, n int) ([]models.TechNews, error) {
	query := `
		SELECT id, title, link, posted_by, created_at
		FROM tech_news
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

	news := []models.TechNews{}
	for rows.Next() {
		var item models.TechNews
		if err := rows.Scan(&item.ID, &item.Title, &item.Link, &item.PostedBy, &item.CreatedAt); err != nil {
			return nil, err
		}
		news = append(news, item)
	}

	return news, rows.Err()
}
