// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/status", middleware.WithLogging(handler))

Each request gets an id (taken from X-Request-ID or generated with
google/uuid) that is echoed back in the response. Completion is logged
with status, response size and duration_ms.

# CORS Middleware

Enable cross-origin requests for the API (backed by github.com/rs/cors):

	api := middleware.CORS(cfg.CORSOrigins)(apiMux)

An empty origin list allows any origin. Methods GET, POST and OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid judge number")

Errors are written as {"error": "<message>"}.

Parse JSON request bodies:

	var req models.JudgeActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged with every request.
*/
package middleware
