// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/campus-hub/cliparse"
	"github.com/danielhkuo/campus-hub/db"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. No external services needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hub_test.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         8080,
		DatabaseType: "sqlite",
		DatabaseURL:  "file:hub_test.db",
		UploadDir:    t.TempDir(),
	}
}

// CreateTestSurvey inserts a survey and returns its ID
func CreateTestSurvey(t *testing.T, conn *sql.DB, question string) string {
	t.Helper()

	surveyID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO survey (id, question, created_by, created_at)
		VALUES ($1, $2, 'TestUser', $3)
	`, surveyID, question, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return surveyID
}

// AddTestOption adds an option to a survey and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, surveyID, text string) string {
	t.Helper()

	optionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO survey_option (id, survey_id, text, votes)
		VALUES ($1, $2, $3, 0)
	`, optionID, surveyID, text)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CreateTestQuestion inserts a Q&A question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string) string {
	t.Helper()

	questionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO question (id, text, asked_by, created_at)
		VALUES ($1, $2, 'TestUser', $3)
	`, questionID, text, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID
}

// AddTestAnswer adds an answer to a question and returns the answer ID
func AddTestAnswer(t *testing.T, conn *sql.DB, questionID, text string) string {
	t.Helper()

	answerID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO answer (id, question_id, text, replied_by, created_at)
		VALUES ($1, $2, $3, 'TestUser', $4)
	`, answerID, questionID, text, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return answerID
}

// CreateTestMaterial inserts a study material record and returns its ID
func CreateTestMaterial(t *testing.T, conn *sql.DB, title, filename string) string {
	t.Helper()

	materialID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO study_material (id, title, description, filename, file_size, uploaded_by, created_at)
		VALUES ($1, $2, '', $3, 0, 'TestUser', $4)
	`, materialID, title, filename, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test material: %v", err)
	}

	return materialID
}

// CreateTestNews inserts a tech-news record and returns its ID
func CreateTestNews(t *testing.T, conn *sql.DB, title, link string) string {
	t.Helper()

	newsID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO tech_news (id, title, link, posted_by, created_at)
		VALUES ($1, $2, $3, 'TestUser', $4)
	`, newsID, title, link, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test news: %v", err)
	}

	return newsID
}

// CreateTestAnnouncement inserts an announcement and returns its ID
func CreateTestAnnouncement(t *testing.T, conn *sql.DB, text string) string {
	t.Helper()

	announcementID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO announcement (id, text, posted_by, created_at)
		VALUES ($1, $2, 'TestUser', $3)
	`, announcementID, text, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test announcement: %v", err)
	}

	return announcementID
}

// MakeFormRequest creates a form-encoded POST test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeMultipartRequest creates a multipart POST test request with
// ordinary fields plus one file part (skipped when filename is empty)
func MakeMultipartRequest(t *testing.T, path string, fields map[string]string, fileField, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write form field %s: %v", k, err)
		}
	}

	if filename != "" {
		part, err := mw.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
			t.Fatalf("Failed to write file content: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// FlashMessage extracts the one-shot message a handler attached to the
// response, or "" when none was set
func FlashMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == "hub_flash" && c.MaxAge >= 0 {
			msg, err := base64.URLEncoding.DecodeString(c.Value)
			if err != nil {
				t.Fatalf("Failed to decode flash cookie: %v", err)
			}
			return string(msg)
		}
	}
	return ""
}

// CarryFlash copies the flash cookie from a redirect response onto the
// follow-up request, mimicking a browser
func CarryFlash(w *httptest.ResponseRecorder, req *http.Request) {
	for _, c := range w.Result().Cookies() {
		if c.Name == "hub_flash" {
			req.AddCookie(c)
		}
	}
}
