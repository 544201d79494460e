// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the schema and the Store repository.

# Opening

Open connects, pings and creates the schema for either driver:

	store, err := db.Open(ctx, "sqlite", "votes.db")
	store, err := db.Open(ctx, "postgres", "postgres://...")

SQLite goes through modernc.org/sqlite with foreign keys enabled; postgres
goes through lib/pq. Queries are written with ? and rebound by sqlx.

# Tables

	players  (id, name UNIQUE)
	voters   (id, name, email, token UNIQUE), UNIQUE (name, email)
	matches  (id, name)
	votes    (id, match_id, voter_id, player_3, player_2, player_1)

votes has UNIQUE (match_id, voter_id) and a CHECK that the three players
differ. Rows are never updated or deleted.

# Transactions

	err := store.WithTx(ctx, func(tx db.Store) error {
		...
	})

Roster imports run inside WithTx so a failure leaves no partial roster.

# Errors

  - ErrVoterNotFound, ErrMatchNotFound: lookups with no row
  - ErrAlreadyVoted: unique violation on votes, from either driver
  - ErrInvalidVote: CHECK or foreign key violation on votes

InsertVote is the only double-vote guard. Handlers may call HasVoted to
show a friendly page early, but must still treat ErrAlreadyVoted from the
insert as the normal "already voted" outcome.
*/
package db
