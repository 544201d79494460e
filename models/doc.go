// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, results, and setup types shared across packages.

# Domain Types

One type per table:

  - Player: roster member that can receive points
  - Voter: person allowed to vote, identified by a secret token
  - Match: one round; all votes for a round reference it
  - Vote: a 3-2-1 ballot (player_3, player_2, player_1)

Voter.Token is tagged json:"-" and never leaves the server in a response body.

# Results Types

  - PlayerPoints: tallied points for one player
  - ResultsResponse: match, standings, vote_count

# Setup Types

  - RosterEntry: player name plus optional email
  - SetupSummary: what a round setup created and what it could not do

# Constants

Points per slot:

	PointsFirst  = 3
	PointsSecond = 2
	PointsThird  = 1

Form fields:

	FieldPlayer3 = "player_3"
	FieldPlayer2 = "player_2"
	FieldPlayer1 = "player_1"
*/
package models
