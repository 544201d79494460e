// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/auth"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
	"github.com/danielhkuo/vote321/notify"
)

var ErrEmptyRound = errors.New("round name is required")

// Result describes what one Import changed.
type Result struct {
	Match        *models.Match
	PlayersAdded int
	VotersAdded  int
	// MissingEmails lists players registered without voting rights.
	MissingEmails []string
}

// Import registers the roster and creates the match for round.
// Players are upserted by name and voters by (name, email); an existing voter
// keeps its token so links already sent stay valid. Players sharing an email
// each get their own voter. Rows without a player name are skipped. The round
// name is checked before anything is written, and all writes share one
// transaction so a failure leaves the store unchanged.
func Import(ctx context.Context, store db.Store, round string, list []models.RosterEntry) (Result, error) {
	round = strings.TrimSpace(round)
	if round == "" {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformed, ErrEmptyRound)
	}

	var res Result
	err := store.WithTx(ctx, func(tx db.Store) error {
		res = Result{}
		return importRoster(ctx, tx, round, list, &res)
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().
		Str("round", round).
		Int64("match_id", res.Match.ID).
		Int("players_added", res.PlayersAdded).
		Int("voters_added", res.VotersAdded).
		Int("missing_emails", len(res.MissingEmails)).
		Msg("roster imported")

	return res, nil
}

func importRoster(ctx context.Context, store db.Store, round string, list []models.RosterEntry, res *Result) error {
	for _, e := range list {
		name := strings.TrimSpace(e.Player)
		if name == "" {
			continue
		}

		_, created, err := store.EnsurePlayer(ctx, name)
		if err != nil {
			return fmt.Errorf("add player %q: %w", name, err)
		}
		if created {
			res.PlayersAdded++
		}

		email := strings.TrimSpace(e.Email)
		if email == "" {
			res.MissingEmails = append(res.MissingEmails, name)
			continue
		}

		token, err := auth.GenerateVoterToken()
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}
		_, created, err = store.EnsureVoter(ctx, models.Voter{Name: name, Email: email, Token: token})
		if err != nil {
			return fmt.Errorf("add voter %q: %w", name, err)
		}
		if created {
			res.VotersAdded++
		}
	}

	match, err := store.CreateMatch(ctx, round)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	res.Match = match
	return nil
}

// Setup imports the roster, creates the round and sends every voter their
// link. Delivery failures are reported in the summary, not returned.
func Setup(ctx context.Context, store db.Store, n notify.Notifier, baseURL, round string, list []models.RosterEntry) (models.SetupSummary, error) {
	res, err := Import(ctx, store, round, list)
	if err != nil {
		return models.SetupSummary{}, err
	}

	summary := models.SetupSummary{
		Round:          res.Match.Name,
		MatchID:        res.Match.ID,
		PlayersAdded:   res.PlayersAdded,
		VotersAdded:    res.VotersAdded,
		MissingEmails:  res.MissingEmails,
		FailedDelivery: []string{},
	}
	if summary.MissingEmails == nil {
		summary.MissingEmails = []string{}
	}

	report, err := notify.Dispatch(ctx, store, n, baseURL, res.Match.ID)
	if err != nil {
		return summary, fmt.Errorf("dispatch voting links: %w", err)
	}
	summary.FailedDelivery = report.FailedNames()

	return summary, nil
}
