// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Points awarded per rank slot
const (
	PointsFirst  = 3
	PointsSecond = 2
	PointsThird  = 1
)

// Form field names for the three rank slots
const (
	FieldPlayer3 = "player_3"
	FieldPlayer2 = "player_2"
	FieldPlayer1 = "player_1"
)

// Domain types

type Player struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Voter struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Token string `json:"-" db:"token"` // Never expose in JSON
}

type Match struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Vote is one voter's 3-2-1 ballot for a match.
// Player3 receives 3 points, Player2 receives 2, Player1 receives 1.
type Vote struct {
	ID      int64 `json:"id" db:"id"`
	MatchID int64 `json:"match_id" db:"match_id"`
	VoterID int64 `json:"voter_id" db:"voter_id"`
	Player3 int64 `json:"player_3" db:"player_3"`
	Player2 int64 `json:"player_2" db:"player_2"`
	Player1 int64 `json:"player_1" db:"player_1"`
}

// Distinct reports whether the three selections are pairwise different.
func (v Vote) Distinct() bool {
	return v.Player3 != v.Player2 && v.Player3 != v.Player1 && v.Player2 != v.Player1
}

// Results types

type PlayerPoints struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
}

type ResultsResponse struct {
	Match     Match          `json:"match"`
	Standings []PlayerPoints `json:"standings"`
	VoteCount int            `json:"vote_count"`
}

// Setup types

// RosterEntry is one row of tabular roster input.
// An empty Email means the player is registered without voting rights.
type RosterEntry struct {
	Player string
	Email  string
}

type SetupSummary struct {
	Round          string   `json:"round"`
	MatchID        int64    `json:"match_id"`
	PlayersAdded   int      `json:"players_added"`
	VotersAdded    int      `json:"voters_added"`
	MissingEmails  []string `json:"missing_emails"`
	FailedDelivery []string `json:"failed_delivery"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
