// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/vote321/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sqlx.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == cliparse.DatabasePostgres {
		schema = postgresSchema
	}

	_, err := conn.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Players
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

-- Voters
CREATE TABLE IF NOT EXISTS voters (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    token TEXT NOT NULL UNIQUE
);

-- A voter is one roster row; several players may share an email
CREATE UNIQUE INDEX IF NOT EXISTS idx_voters_name_email ON voters(name, email);

-- Matches
CREATE TABLE IF NOT EXISTS matches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    match_id INTEGER NOT NULL REFERENCES matches(id),
    voter_id INTEGER NOT NULL REFERENCES voters(id),
    player_3 INTEGER NOT NULL REFERENCES players(id),
    player_2 INTEGER NOT NULL REFERENCES players(id),
    player_1 INTEGER NOT NULL REFERENCES players(id),
    UNIQUE (match_id, voter_id),
    CHECK (player_3 <> player_2 AND player_3 <> player_1 AND player_2 <> player_1)
);

CREATE INDEX IF NOT EXISTS idx_votes_match_id ON votes(match_id);
`

const postgresSchema = `
-- Players
CREATE TABLE IF NOT EXISTS players (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Voters
CREATE TABLE IF NOT EXISTS voters (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    token TEXT NOT NULL UNIQUE
);

-- A voter is one roster row; several players may share an email
CREATE UNIQUE INDEX IF NOT EXISTS idx_voters_name_email ON voters(name, email);

-- Matches
CREATE TABLE IF NOT EXISTS matches (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    name TEXT NOT NULL
);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    match_id BIGINT NOT NULL REFERENCES matches(id),
    voter_id BIGINT NOT NULL REFERENCES voters(id),
    player_3 BIGINT NOT NULL REFERENCES players(id),
    player_2 BIGINT NOT NULL REFERENCES players(id),
    player_1 BIGINT NOT NULL REFERENCES players(id),
    UNIQUE (match_id, voter_id),
    CHECK (player_3 <> player_2 AND player_3 <> player_1 AND player_2 <> player_1)
);

CREATE INDEX IF NOT EXISTS idx_votes_match_id ON votes(match_id);
`
