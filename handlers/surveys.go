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

const surveysPath = "/surveys"

type SurveyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSurveyHandler(db *sql.DB, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{db: db, cfg: cfg}
}

// List handles GET /surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := listSurveys(h.db, 0)
	if err != nil {
		slog.Error("failed to query surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SurveyListResponse{
		Message: middleware.PopFlash(w, r),
		Surveys: surveys,
	})
}

// Create handles POST /surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.FlashRedirect(w, r, surveysPath, "Question and at least two options are required.")
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	createdBy := strings.TrimSpace(r.FormValue("created_by"))

	// Trimmed, non-empty, distinct option texts in submission order
	seen := map[string]bool{}
	options := []string{}
	for _, raw := range r.PostForm["options"] {
		opt := strings.TrimSpace(raw)
		if opt == "" || seen[opt] {
			continue
		}
		seen[opt] = true
		options = append(options, opt)
	}

	if question == "" || len(options) < 2 {
		middleware.FlashRedirect(w, r, surveysPath, "Question and at least two options are required.")
		return
	}

	// Survey and options land together or not at all
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	surveyID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO survey (id, question, created_by, created_at)
		VALUES ($1, $2, $3, $4)
	`, surveyID, question, createdBy, time.Now())

	if err != nil {
		slog.Error("failed to insert survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create survey")
		return
	}

	for _, opt := range options {
		_, err = tx.Exec(`
			INSERT INTO survey_option (id, survey_id, text, votes)
			VALUES ($1, $2, $3, 0)
		`, uuid.NewString(), surveyID, opt)

		if err != nil {
			slog.Error("failed to insert survey option", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create survey")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create survey")
		return
	}

	slog.Info("survey created", "survey_id", surveyID, "options", len(options))

	middleware.FlashRedirect(w, r, surveysPath, "Survey created.")
}

// Vote handles POST /surveys/{id}/vote
//
// The increment is a single conditional UPDATE scoped to the survey, so
// concurrent votes never lose updates and an option can only be voted
// through its own survey.
func (h *SurveyHandler) Vote(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	optionID := strings.TrimSpace(r.FormValue("option_id"))

	if optionID == "" {
		middleware.FlashRedirect(w, r, surveysPath, "Invalid vote.")
		return
	}

	res, err := h.db.Exec(`
		UPDATE survey_option
		SET votes = votes + 1
		WHERE id = $1 AND survey_id = $2
	`, optionID, surveyID)

	if err != nil {
		slog.Error("failed to record vote", "error", err, "survey_id", surveyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read vote result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	if affected == 0 {
		middleware.FlashRedirect(w, r, surveysPath, "Invalid vote.")
		return
	}

	slog.Info("vote counted", "survey_id", surveyID, "option_id", optionID)

	middleware.FlashRedirect(w, r, surveysPath, "Vote counted!")
}

// listSurveys returns surveys with their options, newest first,
// limited to n when n > 0
func listSurveys(db *sql.DB, n int) ([]models.SurveyWithOptions, error) {
	query := `
		SELECT id, question, created_by, created_at
		FROM survey
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

	surveys := []models.SurveyWithOptions{}
	for rows.Next() {
		var s models.Survey
		if err := rows.Scan(&s.ID, &s.Question, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		surveys = append(surveys, models.SurveyWithOptions{Survey: s})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range surveys {
		options, err := listSurveyOptions(db, surveys[i].Survey.ID)
		if err != nil {
			return nil, err
		}
		surveys[i].Options = options
	}

	return surveys, nil
}

func listSurveyOptions(db *sql.DB, surveyID string) ([]models.SurveyOption, error) {
	rows, err := db.Query(`
		SELECT id, survey_id, text, votes
		FROM survey_option
		WHERE survey_id = $1
		ORDER BY id
	`, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []models.SurveyOption{}
	for rows.Next() {
		var opt models.SurveyOption
		if err := rows.Scan(&opt.ID, &opt.SurveyID, &opt.Text, &opt.Votes); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}
