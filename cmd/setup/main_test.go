// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
)

func writeWorkbook(t *testing.T, path string, rows ...[]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestRun(t *testing.T) {
	t.Setenv("VOTE_APP_EMAIL", "")
	t.Setenv("VOTE_APP_EMAIL_PASS", "")

	dir := t.TempDir()
	playersPath := filepath.Join(dir, "players.xlsx")
	emailsPath := filepath.Join(dir, "player_emails.xlsx")
	dbPath := filepath.Join(dir, "votes.db")

	writeWorkbook(t, playersPath,
		[]interface{}{"Player"},
		[]interface{}{"Ann"},
		[]interface{}{"Ben"},
		[]interface{}{"Cat"},
	)
	writeWorkbook(t, emailsPath,
		[]interface{}{"Player", "Email"},
		[]interface{}{"Ann", "ann@example.com"},
		[]interface{}{"Ben", "ben@example.com"},
	)

	args := []string{"-players", playersPath, "-emails", emailsPath, "-d", dbPath, "-t", "sqlite", "-log-level", "error"}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, strings.NewReader("\n"), &out))

	assert.Contains(t, out.String(), "[Round 1]")
	assert.Contains(t, out.String(), `no email for player "Cat"`)
	assert.Contains(t, out.String(), `for "Round 1" (3 new players, 2 new voters)`)

	out.Reset()
	require.NoError(t, run(context.Background(), append(args, "-round", "Round 2"), strings.NewReader(""), &out))
	assert.NotContains(t, out.String(), "Enter a name")
	assert.Contains(t, out.String(), `for "Round 2" (0 new players, 0 new voters)`)

	store, err := db.Open(context.Background(), cliparse.DatabaseSQLite, dbPath)
	require.NoError(t, err)
	defer store.Close()

	matches, err := store.ListMatches(context.Background())
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRunMissingWorkbook(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "")
	dir := t.TempDir()
	args := []string{"-players", filepath.Join(dir, "nope.xlsx"), "-d", filepath.Join(dir, "votes.db"), "-round", "R"}

	err := run(context.Background(), args, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPromptRound(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Semi Final\n", "Semi Final"},
		{"  Quarter  \n", "Quarter"},
		{"\n", defaultRound},
		{"", defaultRound},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, promptRound(strings.NewReader(tt.input), &bytes.Buffer{}))
		})
	}
}
