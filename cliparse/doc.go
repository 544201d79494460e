// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that need their own flags register them first and share the rest:

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "votes_export.xlsx", "output file")
	cfg, err := cliparse.ParseFlagSet(fs, os.Args[1:])

# CLI Flags

	-p           Server port
	-d           Database URL (sqlite file path or postgres URL)
	-t           Database type (sqlite or postgres)
	-base-url    Base URL used in voting links
	-admin-key   Admin shared secret
	-log-level   debug, info, warn, error

# Environment Variables

Flags fall back to environment variables:

	PORT                 (default 5000)
	DATABASE_URL         (default votes.db)
	DATABASE_TYPE        (default sqlite)
	BASE_URL             (default http://127.0.0.1:5000)
	ADMIN_KEY            (empty disables /admin)
	LOG_LEVEL            (default info)
	SMTP_HOST            (default smtp.gmail.com)
	SMTP_PORT            (default 465)
	VOTE_APP_EMAIL       sender address and SMTP username
	VOTE_APP_EMAIL_PASS  SMTP password

LoadEnv reads a .env file first, if one exists.
Without VOTE_APP_EMAIL and VOTE_APP_EMAIL_PASS, mail is logged instead of sent.
*/
package cliparse
