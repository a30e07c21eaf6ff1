// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types for the hub.

# Domain Types

One struct per stored record:

  - StudyMaterial: uploaded file with title, description, stored filename
  - Survey: survey question and creator
  - SurveyOption: option text plus its vote counter
  - Question: Q&A question
  - Answer: reply belonging to a question
  - TechNews: shared link
  - Announcement: free-form post

Composite views pair parents with their children:

  - SurveyWithOptions
  - QuestionWithAnswers

Records are never updated after creation, with one exception:
SurveyOption.Votes, which only ever increments.

# Response Types

Each list endpoint has a response envelope (MaterialListResponse,
SurveyListResponse, ...) carrying the records newest-first plus the
popped one-shot flash message, and the dashboard aggregates the
HomeLimit most recent records of every resource into HomeResponse.

Optional display names and derived fields marshal with omitempty so
untouched form fields stay out of the JSON.

# Constants

	HomeLimit = 5
*/
package models
