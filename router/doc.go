// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the 3-2-1 voting app.

# Route Registration

NewRouter creates a chi router with all endpoints:

	mux := router.NewRouter(store, notifier, cfg)

# Endpoints

Health:

	GET /health
	GET /

Voting (token in the query string):

	GET  /vote/{matchID}?token=... - Ballot form
	POST /vote/{matchID}?token=... - Submit ballot

Results (public):

	GET /results/{matchID}             - Standings table
	GET /results/{matchID}?format=json - Standings as JSON

Admin (requires ?key= or X-Admin-Key):

	GET  /admin/setup - Round setup form
	POST /admin/setup - Import roster, create round, email links

# Middleware

Every request gets chi's RequestID, RealIP and Recoverer plus request
logging. Voting and results run under a 10s timeout; admin requests under 60s.
*/
package router
