// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/notify"
	"github.com/danielhkuo/vote321/roster"
)

type AdminHandler struct {
	store    db.Store
	notifier notify.Notifier
	render   *render.Render
	baseURL  string
}

func NewAdminHandler(store db.Store, n notify.Notifier, r *render.Render, baseURL string) *AdminHandler {
	return &AdminHandler{store: store, notifier: n, render: r, baseURL: baseURL}
}

type setupPage struct {
	Round string
	CSV   string
	Error string
}

// SetupForm handles GET /admin/setup
func (h *AdminHandler) SetupForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "admin_setup", setupPage{})
}

// Setup handles POST /admin/setup
// Registers the pasted roster, creates the round and emails voting links.
func (h *AdminHandler) Setup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.HTML(w, http.StatusBadRequest, "admin_setup", setupPage{Error: "Could not read the form."})
		return
	}

	page := setupPage{
		Round: strings.TrimSpace(r.PostForm.Get("round_name")),
		CSV:   r.PostForm.Get("csv"),
	}

	if page.Round == "" {
		page.Error = "Round name is required."
		h.render.HTML(w, http.StatusBadRequest, "admin_setup", page)
		return
	}

	entries, err := roster.ParseCSV(strings.NewReader(page.CSV))
	if err != nil {
		page.Error = "Error reading CSV: " + err.Error()
		h.render.HTML(w, http.StatusBadRequest, "admin_setup", page)
		return
	}

	summary, err := roster.Setup(r.Context(), h.store, h.notifier, h.baseURL, page.Round, entries)
	if errors.Is(err, roster.ErrMalformed) {
		page.Error = err.Error()
		h.render.HTML(w, http.StatusBadRequest, "admin_setup", page)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("round", page.Round).Msg("admin setup failed")
		h.render.HTML(w, http.StatusInternalServerError, "message", message{
			Title:   "Setup failed",
			Message: "The round could not be completed. Check the server log.",
		})
		return
	}

	h.render.HTML(w, http.StatusOK, "admin_summary", summary)
}
