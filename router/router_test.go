// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/campus-hub/filestore"
	"github.com/danielhkuo/campus-hub/models"
	"github.com/danielhkuo/campus-hub/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	store, err := filestore.New(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	return NewRouter(db, store, testutil.GetTestConfig(t))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var home models.HomeResponse
	if err := json.NewDecoder(w.Body).Decode(&home); err != nil {
		t.Fatalf("Dashboard did not return JSON: %v", err)
	}
	if home.Materials == nil || home.Surveys == nil {
		t.Error("Dashboard sections should be empty arrays, not null")
	}
}

func TestRootDoesNotMatchSubpaths(t *testing.T) {
	mux := newTestRouter(t)

	// "GET /{$}" binds the bare root only
	req := httptest.NewRequest("GET", "/no-such-page", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	// Note: handlers may return 400 or 404 for missing data, which is valid behavior
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/materials"},
		{"POST", "/materials"},
		{"GET", "/uploads/some-file.pdf"},

		{"GET", "/surveys"},
		{"POST", "/surveys"},
		{"POST", "/surveys/test-id/vote"},

		{"GET", "/qa"},
		{"POST", "/qa"},
		{"POST", "/qa/test-id/answer"},

		{"GET", "/tech"},
		{"POST", "/tech"},

		{"GET", "/announcements"},
		{"POST", "/announcements"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.method == "POST" {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/materials"},
		{"PUT", "/surveys"},
		{"GET", "/surveys/test-id/vote"},
		{"GET", "/qa/test-id/answer"},
		{"POST", "/uploads/file.pdf"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	store, err := filestore.New(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	mux := NewRouter(db, store, testutil.GetTestConfig(t))

	surveyID := testutil.CreateTestSurvey(t, db, "Routed survey?")
	optionID := testutil.AddTestOption(t, db, surveyID, "Yes")

	t.Run("survey ID extraction", func(t *testing.T) {
		form := url.Values{"option_id": {optionID}}
		req := httptest.NewRequest("POST", "/surveys/"+surveyID+"/vote", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Errorf("Expected 303 for valid vote through router, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("filename extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/uploads/missing.pdf", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// Route matched, file absent
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for missing file, got %d", w.Code)
		}
	})
}
