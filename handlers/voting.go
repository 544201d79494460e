// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
)

const (
	msgInvalidSelection = "Invalid selection."
	msgNotDistinct      = "You must choose three different players."
)

type VotingHandler struct {
	store  db.Store
	render *render.Render
}

func NewVotingHandler(store db.Store, r *render.Render) *VotingHandler {
	return &VotingHandler{store: store, render: r}
}

type ballotSlot struct {
	Field    string
	Label    string
	Selected int64
}

type ballotPage struct {
	Match   *models.Match
	Voter   *models.Voter
	Players []models.Player
	Slots   []ballotSlot
	Error   string
}

func newBallotPage(match *models.Match, voter *models.Voter, players []models.Player, v models.Vote) ballotPage {
	return ballotPage{
		Match:   match,
		Voter:   voter,
		Players: players,
		Slots: []ballotSlot{
			{Field: models.FieldPlayer3, Label: "3 votes", Selected: v.Player3},
			{Field: models.FieldPlayer2, Label: "2 votes", Selected: v.Player2},
			{Field: models.FieldPlayer1, Label: "1 vote", Selected: v.Player1},
		},
	}
}

// ShowBallot handles GET /vote/{matchID}?token=...
func (h *VotingHandler) ShowBallot(w http.ResponseWriter, r *http.Request) {
	voter, match, ok := h.admit(w, r)
	if !ok {
		return
	}

	players, err := h.store.ListPlayers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list players")
		h.serverError(w)
		return
	}

	h.render.HTML(w, http.StatusOK, "vote", newBallotPage(match, voter, players, models.Vote{}))
}

// SubmitVote handles POST /vote/{matchID}?token=...
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	voter, match, ok := h.admit(w, r)
	if !ok {
		return
	}

	players, err := h.store.ListPlayers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list players")
		h.serverError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		page := newBallotPage(match, voter, players, models.Vote{})
		page.Error = msgInvalidSelection
		h.render.HTML(w, http.StatusBadRequest, "vote", page)
		return
	}

	vote, problem := parseBallot(r, players)
	vote.MatchID = match.ID
	vote.VoterID = voter.ID
	if problem != "" {
		page := newBallotPage(match, voter, players, vote)
		page.Error = problem
		h.render.HTML(w, http.StatusBadRequest, "vote", page)
		return
	}

	err = h.store.InsertVote(r.Context(), &vote)
	switch {
	case errors.Is(err, db.ErrAlreadyVoted):
		// Lost a race with another submission from the same voter
		log.Info().Int64("match_id", match.ID).Int64("voter_id", voter.ID).Msg("duplicate vote ignored")
		h.alreadyVoted(w)
		return
	case errors.Is(err, db.ErrInvalidVote):
		page := newBallotPage(match, voter, players, vote)
		page.Error = msgInvalidSelection
		h.render.HTML(w, http.StatusBadRequest, "vote", page)
		return
	case err != nil:
		log.Error().Err(err).Int64("match_id", match.ID).Msg("failed to insert vote")
		h.serverError(w)
		return
	}

	log.Info().Int64("match_id", match.ID).Int64("vote_id", vote.ID).Msg("vote recorded")

	h.render.HTML(w, http.StatusOK, "message", message{Title: "Thanks, your vote has been recorded!"})
}

// admit runs the checks shared by GET and POST, in order: token present,
// token known, match exists, no vote yet. It writes the response and
// returns ok=false when any check fails.
func (h *VotingHandler) admit(w http.ResponseWriter, r *http.Request) (*models.Voter, *models.Match, bool) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.render.HTML(w, http.StatusBadRequest, "message", message{
			Title:   "Missing token",
			Message: "This link is missing the ?token=... part.",
		})
		return nil, nil, false
	}

	voter, err := h.store.GetVoterByToken(r.Context(), token)
	if errors.Is(err, db.ErrVoterNotFound) {
		h.render.HTML(w, http.StatusForbidden, "message", message{
			Title:   "Invalid token",
			Message: "This token does not match any voter.",
		})
		return nil, nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to look up voter")
		h.serverError(w)
		return nil, nil, false
	}

	match, ok := h.loadMatch(w, r)
	if !ok {
		return nil, nil, false
	}

	voted, err := h.store.HasVoted(r.Context(), match.ID, voter.ID)
	if err != nil {
		log.Error().Err(err).Int64("match_id", match.ID).Msg("failed to check existing vote")
		h.serverError(w)
		return nil, nil, false
	}
	if voted {
		h.alreadyVoted(w)
		return nil, nil, false
	}

	return voter, match, true
}

func (h *VotingHandler) loadMatch(w http.ResponseWriter, r *http.Request) (*models.Match, bool) {
	raw := chi.URLParam(r, "matchID")
	match, status, err := lookupMatch(r.Context(), h.store, raw)
	switch {
	case status == http.StatusNotFound:
		h.render.HTML(w, status, "message", message{Title: "Match " + raw + " not found"})
		return nil, false
	case err != nil:
		h.serverError(w)
		return nil, false
	}
	return match, true
}

func (h *VotingHandler) alreadyVoted(w http.ResponseWriter) {
	h.render.HTML(w, http.StatusOK, "message", message{Title: "You have already voted for this match. Thank you!"})
}

func (h *VotingHandler) serverError(w http.ResponseWriter) {
	h.render.HTML(w, http.StatusInternalServerError, "message", message{Title: "Something went wrong", Message: "Please try again later."})
}

// lookupMatch resolves a raw {matchID} path value. Unknown or non-numeric
// ids report 404; store failures are logged and report 500.
func lookupMatch(ctx context.Context, store db.Store, raw string) (*models.Match, int, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, http.StatusNotFound, db.ErrMatchNotFound
	}

	match, err := store.GetMatch(ctx, id)
	if errors.Is(err, db.ErrMatchNotFound) {
		return nil, http.StatusNotFound, err
	}
	if err != nil {
		log.Error().Err(err).Int64("match_id", id).Msg("failed to query match")
		return nil, http.StatusInternalServerError, err
	}

	return match, http.StatusOK, nil
}

// parseBallot reads the three rank slots. It returns the parsed vote (with
// whatever could be parsed, for re-rendering) and a user-facing problem, or
// "" when the ballot is valid. Checks run in order: numeric, distinct, known.
func parseBallot(r *http.Request, players []models.Player) (models.Vote, string) {
	var v models.Vote
	var problem string

	fields := []struct {
		name string
		dst  *int64
	}{
		{models.FieldPlayer3, &v.Player3},
		{models.FieldPlayer2, &v.Player2},
		{models.FieldPlayer1, &v.Player1},
	}

	for _, f := range fields {
		id, err := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get(f.name)), 10, 64)
		if err != nil {
			problem = msgInvalidSelection
			continue
		}
		*f.dst = id
	}
	if problem != "" {
		return v, problem
	}

	if !v.Distinct() {
		return v, msgNotDistinct
	}

	known := make(map[int64]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
	}
	for _, f := range fields {
		if !known[*f.dst] {
			return v, msgInvalidSelection
		}
	}

	return v, ""
}
