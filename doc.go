// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the 3-2-1 voting server.

Each round, every registered voter gets an emailed link carrying a personal
token. The link opens a ballot where the voter gives 3, 2 and 1 points to
three different players. Anyone can view the tallied standings per round.

# Starting the Server

With defaults (sqlite file votes.db, port 5000):

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -base-url https://votes.example

Settings may also come from the environment or a .env file.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - DATABASE_TYPE (-t): sqlite or postgres
  - BASE_URL (-base-url): prefix for emailed voting links
  - ADMIN_KEY (-admin-key): enables /admin/setup
  - VOTE_APP_EMAIL, VOTE_APP_EMAIL_PASS: SMTP credentials; without them
    emails are written to the log

# Commands

  - cmd/setup: register players and voters from xlsx files and start a round
  - cmd/export: dump all tables to an xlsx workbook

# Architecture

  - handlers: HTTP request handlers (voting, results, admin)
  - router: chi route definitions
  - middleware: request logging, admin guard
  - models: domain and response types
  - auth: voter tokens and admin key checks
  - db: schema and store
  - notify: voting link delivery
  - roster: roster parsing and round setup
  - export: workbook export
  - cliparse: configuration parsing
  - logging: zerolog setup

See package documentation for each component.
*/
package main
