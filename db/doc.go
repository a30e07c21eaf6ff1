// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured type:

	conn, err := db.Open("sqlite", "hub.db")
	conn, err := db.Open("postgres", "postgres://...")

For sqlite the foreign_keys and busy_timeout pragmas are enabled and the
connection pool is limited to a single connection (sqlite has one
writer).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. This is the one-time administrative initialization; running it
at every boot is harmless.

# Tables

The schema includes:

  - study_material: Uploaded files with title and description
  - survey: Survey question and creator
  - survey_option: Options per survey with a vote counter
  - question: Q&A questions
  - answer: Replies per question
  - tech_news: Shared links
  - announcement: Free-form announcements

# Relationships

	survey   1──* survey_option
	question 1──* answer

Both foreign keys use ON DELETE CASCADE: removing a survey removes its
options, removing a question removes its answers. All other tables are
independent flat records.

# SQL Portability

Statements use $N placeholders throughout. Postgres takes them natively;
sqlite accepts $-prefixed parameters with ordinal binding, so the same
query text runs on both backends.
*/
package db
