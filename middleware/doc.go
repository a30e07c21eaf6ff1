// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with the Content-Type header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Flash Messages

Every POST endpoint finishes with a redirect back to its list view and
a one-shot status message:

	middleware.FlashRedirect(w, r, "/surveys", "Survey created.")

The message rides a short-lived cookie and is consumed by the next list
handler:

	msg := middleware.PopFlash(w, r)

PopFlash clears the cookie, so the message is delivered to exactly one
response and then discarded. No flash state is ever persisted
server-side.
*/
package middleware
