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

const qaPath = "/qa"

type QAHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQAHandler(db *sql.DB, cfg cliparse.Config) *QAHandler {
	return &QAHandler{db: db, cfg: cfg}
}

// List handles GET /qa
func (h *QAHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := listQuestions(h.db, 0)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QAListResponse{
		Message:   middleware.PopFlash(w, r),
		Questions: questions,
	})
}

// Ask handles POST /qa
func (h *QAHandler) Ask(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.FormValue("text"))
	askedBy := strings.TrimSpace(r.FormValue("asked_by"))

	if text == "" {
		middleware.FlashRedirect(w, r, qaPath, "Question text is required.")
		return
	}

	questionID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO question (id, text, asked_by, created_at)
		VALUES ($1, $2, $3, $4)
	`, questionID, text, askedBy, time.Now())

	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post question")
		return
	}

	slog.Info("question posted", "question_id", questionID)

	middleware.FlashRedirect(w, r, qaPath, "Question posted.")
}

// Answer handles POST /qa/{id}/answer
//
// The target question is checked explicitly rather than left to the
// foreign key, so both database backends behave identically.
func (h *QAHandler) Answer(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	text := strings.TrimSpace(r.FormValue("text"))
	repliedBy := strings.TrimSpace(r.FormValue("replied_by"))

	if text == "" {
		middleware.FlashRedirect(w, r, qaPath, "Reply text is required.")
		return
	}

	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)

	if err != nil {
		slog.Error("failed to check question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !exists {
		middleware.FlashRedirect(w, r, qaPath, "Question not found.")
		return
	}

	answerID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO answer (id, question_id, text, replied_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, answerID, questionID, text, repliedBy, time.Now())

	if err != nil {
		slog.Error("failed to insert answer", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post reply")
		return
	}

	slog.Info("reply added", "question_id", questionID, "answer_id", answerID)

	middleware.FlashRedirect(w, r, qaPath, "Reply added.")
}

// listQuestions returns questions with their answers, newest first,
// limited to n when n > 0
func listQuestions(db *sql.DB, n int) ([]models.QuestionWithAnswers, error) {
	query := `
		SELECT id, text, asked_by, created_at
		FROM question
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

	questions := []models.QuestionWithAnswers{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.AskedBy, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, models.QuestionWithAnswers{Question: q})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range questions {
		answers, err := listAnswers(db, questions[i].Question.ID)
		if err != nil {
			return nil, err
		}
		questions[i].Answers = answers
	}

	return questions, nil
}

func listAnswers(db *sql.DB, questionID string) ([]models.Answer, error) {
	rows, err := db.Query(`
		SELECT id, question_id, text, replied_by, created_at
		FROM answer
		WHERE question_id = $1
		ORDER BY created_at
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Text, &a.RepliedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}

	return answers, rows.Err()
}
