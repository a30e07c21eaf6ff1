// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Campus Hub.

# Handler Types

Each handler is a struct with database and config dependencies:

  - MaterialHandler: study material uploads and file serving
  - SurveyHandler: survey creation and voting
  - QAHandler: questions and replies
  - NewsHandler: tech-news links
  - AnnouncementHandler: announcements
  - HomeHandler: combined dashboard

Handlers are created via constructor functions that accept *sql.DB and
Config (the material handler also takes the file store):

	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	materialHandler := handlers.NewMaterialHandler(db, store, cfg)

# Request Flow

List endpoints return JSON, newest records first, with the pending
flash message folded in:

	GET /materials, /surveys, /qa, /tech, /announcements

Creation endpoints take form fields (multipart for uploads), validate,
write, and always answer with a flash message plus a 303 redirect back
to their own list view - on success and on validation failure alike.
Validation failures change no state.

# Voting

	POST /surveys/{id}/vote  (form field: option_id)

The counter increment is one conditional UPDATE scoped to the survey.
An option id that doesn't exist or belongs to a different survey
affects zero rows and flashes "Invalid vote.".

# Uploads

	POST /materials          (multipart: title, description, uploaded_by, file)
	GET  /uploads/{filename}

Extensions outside the allow-list are rejected before any write.
Filename collisions get a numeric suffix; see the filestore package.
*/
package handlers
