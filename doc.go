// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Campus Hub server.

Campus Hub is a small community web application: members upload study
materials, run quick surveys, ask and answer questions, share tech-news
links, and post announcements. Handlers emit JSON; page rendering is
left to whatever front end sits in front of the API.

# Starting the Server

With no configuration the server uses a local SQLite file and an
./uploads directory:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

# Configuration

Optional settings (flag / env):

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): connection string; for sqlite a file path
    (default: hub.db). Required when the type is postgres.
  - UPLOAD_DIR (-u): directory for uploaded material files
    (default: uploads)

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (materials, surveys, qa, news,
    announcements, home)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, one-shot flash messages
  - filestore: upload directory management and collision-free naming
  - models: domain and response types
  - db: connection opening and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
