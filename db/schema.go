// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// created_at columns carry no database-side default; every insert writes
// the timestamp explicitly so the DDL stays portable across sqlite and
// postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Study materials (uploaded files)
CREATE TABLE IF NOT EXISTS study_material (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    filename TEXT NOT NULL,
    file_size BIGINT NOT NULL DEFAULT 0,
    uploaded_by TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_study_material_created_at ON study_material(created_at);

-- Surveys
CREATE TABLE IF NOT EXISTS survey (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    created_by TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_survey_created_at ON survey(created_at);

-- Survey options with vote counters
CREATE TABLE IF NOT EXISTS survey_option (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

CREATE INDEX IF NOT EXISTS idx_survey_option_survey_id ON survey_option(survey_id);

-- Q&A questions
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    asked_by TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_created_at ON question(created_at);

-- Q&A answers
CREATE TABLE IF NOT EXISTS answer (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    replied_by TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answer_question_id ON answer(question_id);

-- Tech news links
CREATE TABLE IF NOT EXISTS tech_news (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    link TEXT NOT NULL,
    posted_by TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tech_news_created_at ON tech_news(created_at);

-- Announcements
CREATE TABLE IF NOT EXISTS announcement (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    posted_by TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_announcement_created_at ON announcement(created_at);
`
