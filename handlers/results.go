// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
)

type ResultsHandler struct {
	store  db.Store
	render *render.Render
}

func NewResultsHandler(store db.Store, r *render.Render) *ResultsHandler {
	return &ResultsHandler{store: store, render: r}
}

// GetResults handles GET /results/{matchID}
// Renders the ranked standings as HTML, or JSON with ?format=json.
// Results are public; no token is required.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	asJSON := r.URL.Query().Get("format") == "json"
	raw := chi.URLParam(r, "matchID")

	match, status, err := lookupMatch(r.Context(), h.store, raw)
	if err != nil {
		title := "Something went wrong"
		if status == http.StatusNotFound {
			title = "Match " + raw + " not found"
		}
		h.fail(w, asJSON, status, title)
		return
	}

	players, err := h.store.ListPlayers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list players for results")
		h.fail(w, asJSON, http.StatusInternalServerError, "Something went wrong")
		return
	}

	votes, err := h.store.ListVotes(r.Context(), match.ID)
	if err != nil {
		log.Error().Err(err).Int64("match_id", match.ID).Msg("failed to list votes for results")
		h.fail(w, asJSON, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response := models.ResultsResponse{
		Match:     *match,
		Standings: Tally(players, votes),
		VoteCount: len(votes),
	}

	if asJSON {
		h.render.JSON(w, http.StatusOK, response)
		return
	}
	h.render.HTML(w, http.StatusOK, "results", response)
}

func (h *ResultsHandler) fail(w http.ResponseWriter, asJSON bool, status int, title string) {
	if asJSON {
		h.render.JSON(w, status, models.ErrorResponse{Error: http.StatusText(status), Message: title})
		return
	}
	h.render.HTML(w, status, "message", message{Title: title})
}
