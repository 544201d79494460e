// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
)

func TestRun(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "votes.db")
	outPath := filepath.Join(dir, "out.xlsx")
	ctx := context.Background()

	store, err := db.Open(ctx, cliparse.DatabaseSQLite, dbPath)
	require.NoError(t, err)
	var ids []int64
	for _, name := range []string{"Ann", "Ben", "Cat"} {
		p, _, err := store.EnsurePlayer(ctx, name)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	voter, _, err := store.EnsureVoter(ctx, models.Voter{Name: "Dee", Email: "dee@example.com", Token: "secret-token"})
	require.NoError(t, err)
	match, err := store.CreateMatch(ctx, "Round 1")
	require.NoError(t, err)
	require.NoError(t, store.InsertVote(ctx, &models.Vote{MatchID: match.ID, VoterID: voter.ID, Player3: ids[1], Player2: ids[2], Player1: ids[0]}))
	require.NoError(t, store.Close())

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"-d", dbPath, "-o", outPath, "-log-level", "error"}, &out))
	assert.Contains(t, out.String(), "Exported 3 players, 1 voters, 1 matches, 1 votes")

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	votes, err := f.GetRows("Votes")
	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.Equal(t, []string{"Round 1", "Dee", "Ben", "Cat", "Ann"}, votes[1][1:])

	voters, err := f.GetRows("Voters")
	require.NoError(t, err)
	for _, row := range voters {
		for _, cell := range row {
			assert.NotEqual(t, "secret-token", cell)
		}
	}
}

func TestRunEmptyDatabase(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "")
	dir := t.TempDir()

	var out bytes.Buffer
	err := run(context.Background(), []string{"-d", filepath.Join(dir, "votes.db"), "-o", filepath.Join(dir, "out.xlsx")}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No votes found in database.")
}
