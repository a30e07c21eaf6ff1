// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/campus-hub/models"
	"github.com/danielhkuo/campus-hub/testutil"
)

func TestPostTechNews(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantFlash string
		wantRows  int
	}{
		{
			name:      "valid post",
			form:      url.Values{"title": {"Go 1.25 released"}, "link": {"https://go.dev/blog"}, "posted_by": {"Dave"}},
			wantFlash: "Tech news posted.",
			wantRows:  1,
		},
		{
			name: "link stored verbatim even when malformed",
			form: url.Values{"title": {"Odd link"}, "link": {"not a url at all"}},
			wantFlash: "Tech news posted.",
			wantRows:  1,
		},
		{
			name:      "missing link",
			form:      url.Values{"title": {"Go 1.25 released"}},
			wantFlash: "Title and link are required.",
			wantRows:  0,
		},
		{
			name:      "missing title",
			form:      url.Values{"link": {"https://go.dev/blog"}},
			wantFlash: "Title and link are required.",
			wantRows:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer db.Close()

			handler := NewNewsHandler(db, testutil.GetTestConfig(t))

			req := testutil.MakeFormRequest("POST", "/tech", tt.form)
			w := httptest.NewRecorder()
			handler.Post(w, req)

			testutil.AssertStatus(t, w, http.StatusSeeOther)
			if loc := w.Header().Get("Location"); loc != "/tech" {
				t.Errorf("Expected redirect to /tech, got %q", loc)
			}
			if msg := testutil.FlashMessage(t, w); msg != tt.wantFlash {
				t.Errorf("Expected flash %q, got %q", tt.wantFlash, msg)
			}

			var count int
			if err := db.QueryRow("SELECT COUNT(*) FROM tech_news").Scan(&count); err != nil {
				t.Fatalf("Failed to count news: %v", err)
			}
			if count != tt.wantRows {
				t.Errorf("Expected %d rows, got %d", tt.wantRows, count)
			}
		})
	}
}

func TestListTechNews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewNewsHandler(db, testutil.GetTestConfig(t))

	testutil.CreateTestNews(t, db, "Older story", "https://example.com/1")
	newestID := testutil.CreateTestNews(t, db, "Newer story", "https://example.com/2")

	req := httptest.NewRequest("GET", "/tech", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.NewsListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.News) != 2 {
		t.Fatalf("Expected 2 news items, got %d", len(resp.News))
	}
	if resp.News[0].ID != newestID {
		t.Error("Expected newest story first")
	}
}
