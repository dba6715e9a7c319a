// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ippon Board server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

API (CORS enabled):

	GET  /api/status    - Active round, judges, votes and ippon flag
	POST /api/reset     - Close the round and open the next
	POST /api/vote      - Toggle a judge's vote
	POST /api/yo        - Record a YO
	GET  /api/yo/latest - Most recent YO of any round

Pages:

	GET /                - Display
	GET /?judge=N        - Judge N's buttons
	GET /judge/{number}  - Judge N's buttons
	GET /static/{file}   - Page scripts
*/
package router
