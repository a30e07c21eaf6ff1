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

func TestPostAnnouncement(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		wantFlash string
		wantRows  int
	}{
		{
			name:      "valid announcement",
			form:      url.Values{"text": {"Exam moved to Friday"}, "posted_by": {"Admin"}},
			wantFlash: "Announcement posted.",
			wantRows:  1,
		},
		{
			name:      "anonymous announcement",
			form:      url.Values{"text": {"Pizza in the lounge"}},
			wantFlash: "Announcement posted.",
			wantRows:  1,
		},
		{
			name:      "empty text",
			form:      url.Values{"text": {"  "}},
			wantFlash: "Announcement text is required.",
			wantRows:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer db.Close()

			handler := NewAnnouncementHandler(db, testutil.GetTestConfig(t))

			req := testutil.MakeFormRequest("POST", "/announcements", tt.form)
			w := httptest.NewRecorder()
			handler.Post(w, req)

			testutil.AssertStatus(t, w, http.StatusSeeOther)
			if msg := testutil.FlashMessage(t, w); msg != tt.wantFlash {
				t.Errorf("Expected flash %q, got %q", tt.wantFlash, msg)
			}

			var count int
			if err := db.QueryRow("SELECT COUNT(*) FROM announcement").Scan(&count); err != nil {
				t.Fatalf("Failed to count announcements: %v", err)
			}
			if count != tt.wantRows {
				t.Errorf("Expected %d rows, got %d", tt.wantRows, count)
			}
		})
	}
}

func TestListAnnouncements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAnnouncementHandler(db, testutil.GetTestConfig(t))

	testutil.CreateTestAnnouncement(t, db, "Older")
	newestID := testutil.CreateTestAnnouncement(t, db, "Newer")

	req := httptest.NewRequest("GET", "/announcements", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AnnouncementListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Announcements) != 2 {
		t.Fatalf("Expected 2 announcements, got %d", len(resp.Announcements))
	}
	if resp.Announcements[0].ID != newestID {
		t.Error("Expected newest announcement first")
	}
}
