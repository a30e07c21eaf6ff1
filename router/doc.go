// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Campus Hub.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, store, cfg)

# Endpoints

Health:

	GET /health

Dashboard:

	GET /  - latest 5 records of every resource

Study materials:

	GET  /materials           - list
	POST /materials           - upload (multipart)
	GET  /uploads/{filename}  - fetch a stored file by exact name

Surveys:

	GET  /surveys             - list with options
	POST /surveys             - create
	POST /surveys/{id}/vote   - cast one vote

Q&A:

	GET  /qa                  - list with answers
	POST /qa                  - ask
	POST /qa/{id}/answer      - reply

Tech news:

	GET  /tech                - list
	POST /tech                - post link

Announcements:

	GET  /announcements       - list
	POST /announcements       - post

# Handler Initialization

The router creates handler instances with dependency injection:

	homeHandler := handlers.NewHomeHandler(db, cfg)
	materialHandler := handlers.NewMaterialHandler(db, store, cfg)
	...

All handlers receive the database connection and configuration; the
material handler additionally receives the file store.
*/
package router
