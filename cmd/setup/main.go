// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command setup registers players and voters from xlsx files, creates a new
// round and emails every voter their link.
//
//	setup -players players.xlsx -emails player_emails.xlsx -round "Round 1"
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/logging"
	"github.com/danielhkuo/vote321/models"
	"github.com/danielhkuo/vote321/notify"
	"github.com/danielhkuo/vote321/roster"
)

const defaultRound = "Round 1"

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal().Err(err).Msg("Error loading .env")
	}

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)
	playersPath := fs.String("players", "players.xlsx", "workbook with a Player column")
	emailsPath := fs.String("emails", "player_emails.xlsx", "workbook with Player and Email columns")
	round := fs.String("round", "", "round name (prompted when empty)")

	cfg, err := cliparse.ParseFlagSet(fs, args)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	entries, err := readRoster(*playersPath, *emailsPath)
	if err != nil {
		return err
	}

	if *round == "" {
		*round = promptRound(stdin, stdout)
	}

	store, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := roster.Setup(ctx, store, notify.New(cfg), cfg.BaseURL, *round, entries)
	if err != nil {
		return err
	}

	printSummary(stdout, summary)
	return nil
}

func readRoster(playersPath, emailsPath string) ([]models.RosterEntry, error) {
	pf, err := os.Open(playersPath)
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	players, err := roster.ReadPlayers(pf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", playersPath, err)
	}

	ef, err := os.Open(emailsPath)
	if err != nil {
		return nil, err
	}
	defer ef.Close()

	emails, err := roster.ReadEmails(ef)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", emailsPath, err)
	}

	return roster.Merge(players, emails), nil
}

func promptRound(stdin io.Reader, stdout io.Writer) string {
	fmt.Fprintf(stdout, "Enter a name for this round (e.g. 'Round 1') [%s]: ", defaultRound)

	line, _ := bufio.NewReader(stdin).ReadString('\n')
	if name := strings.TrimSpace(line); name != "" {
		return name
	}
	return defaultRound
}

func printSummary(w io.Writer, s models.SetupSummary) {
	for _, name := range s.MissingEmails {
		fmt.Fprintf(w, "WARNING: no email for player %q, registered without voting rights\n", name)
	}
	fmt.Fprintf(w, "Created match %d for %q (%d new players, %d new voters)\n", s.MatchID, s.Round, s.PlayersAdded, s.VotersAdded)
	if len(s.FailedDelivery) > 0 {
		fmt.Fprintf(w, "Voting link could not be delivered to %d voter(s): %s\n", len(s.FailedDelivery), strings.Join(s.FailedDelivery, ", "))
	}
}
