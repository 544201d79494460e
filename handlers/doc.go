// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the 3-2-1 voting app.

# Handler Types

Each handler is a struct with its store and renderer dependencies:

  - VotingHandler: tokenized ballot form and vote submission
  - ResultsHandler: tallied standings per match
  - AdminHandler: round setup from a pasted roster

Handlers are created via constructor functions that accept a db.Store:

	rnd := handlers.NewRender()
	votingHandler := handlers.NewVotingHandler(store, rnd)

# Voting Flow

	GET  /vote/{matchID}?token=... → ShowBallot
	POST /vote/{matchID}?token=... → SubmitVote

Both run the same checks in order: token present (400), token known (403),
match exists (404), not yet voted (200 acknowledgment). A submission must
name three different known players. The (match, voter) unique constraint
decides races; a conflict is shown as "already voted".

# Results

	GET /results/{matchID}             → GetResults (HTML)
	GET /results/{matchID}?format=json → GetResults (JSON)

Tally awards 3, 2 and 1 points per slot and drops players with no points.

# Admin

	GET  /admin/setup?key=... → SetupForm
	POST /admin/setup?key=... → Setup

Templates live in templates/ and are embedded into the binary.
*/
package handlers
