// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/campus-hub/models"
	"github.com/danielhkuo/campus-hub/testutil"
)

func TestDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewHomeHandler(db, testutil.GetTestConfig(t))

	// Seven announcements; only the newest five should show
	var lastAnnouncementID string
	for i := 1; i <= 7; i++ {
		lastAnnouncementID = testutil.CreateTestAnnouncement(t, db, fmt.Sprintf("Announcement %d", i))
	}

	surveyID := testutil.CreateTestSurvey(t, db, "Best language?")
	testutil.AddTestOption(t, db, surveyID, "Go")
	testutil.AddTestOption(t, db, surveyID, "Rust")

	questionID := testutil.CreateTestQuestion(t, db, "Any tips?")
	testutil.AddTestAnswer(t, db, questionID, "Read the spec")

	testutil.CreateTestMaterial(t, db, "Notes", "notes.pdf")
	testutil.CreateTestNews(t, db, "Go 1.25", "https://go.dev/blog")

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HomeResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Announcements) != models.HomeLimit {
		t.Errorf("Expected %d announcements, got %d", models.HomeLimit, len(resp.Announcements))
	}
	if len(resp.Announcements) > 0 && resp.Announcements[0].ID != lastAnnouncementID {
		t.Error("Expected newest announcement first on dashboard")
	}

	if len(resp.Surveys) != 1 {
		t.Fatalf("Expected 1 survey, got %d", len(resp.Surveys))
	}
	if len(resp.Surveys[0].Options) != 2 {
		t.Errorf("Expected survey options on dashboard, got %d", len(resp.Surveys[0].Options))
	}

	if len(resp.Questions) != 1 || len(resp.Questions[0].Answers) != 1 {
		t.Error("Expected question with its answer on dashboard")
	}
	if len(resp.Materials) != 1 {
		t.Errorf("Expected 1 material, got %d", len(resp.Materials))
	}
	if len(resp.News) != 1 {
		t.Errorf("Expected 1 news item, got %d", len(resp.News))
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewHomeHandler(db, testutil.GetTestConfig(t))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HomeResponse
	testutil.AssertJSON(t, w, &resp)

	// Empty resources serialize as empty arrays, not null
	if resp.Materials == nil || resp.Surveys == nil || resp.Questions == nil ||
		resp.News == nil || resp.Announcements == nil {
		t.Error("Expected empty slices, got nil")
	}
}
