// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command export writes every table to an xlsx workbook.
//
//	export -o votes_export.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/export"
	"github.com/danielhkuo/vote321/logging"
)

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal().Err(err).Msg("Error loading .env")
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.String("o", "votes_export.xlsx", "output workbook")

	cfg, err := cliparse.ParseFlagSet(fs, args)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	store, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	rep, err := export.Build(ctx, store)
	if err != nil {
		return err
	}
	if len(rep.Votes) == 0 {
		fmt.Fprintln(stdout, "No votes found in database.")
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := export.WriteWorkbook(rep, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Exported %d players, %d voters, %d matches, %d votes to %s\n",
		len(rep.Players), len(rep.Voters), len(rep.Matches), len(rep.Votes), *output)
	return nil
}
