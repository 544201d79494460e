// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/vote321/models"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.RosterEntry
		wantErr bool
	}{
		{
			name:  "players with and without email",
			input: "Player,Email\nJohn Smith,john@example.com\nJane Doe,\n",
			want: []models.RosterEntry{
				{Player: "John Smith", Email: "john@example.com"},
				{Player: "Jane Doe", Email: ""},
			},
		},
		{
			name:  "columns in any order with extras",
			input: "Email,Team,Player\njohn@example.com,Blue,John Smith\n",
			want:  []models.RosterEntry{{Player: "John Smith", Email: "john@example.com"}},
		},
		{
			name:  "blank lines and padding",
			input: "Player, Email\n\n  Ann  , ann@example.com \n,\n",
			want:  []models.RosterEntry{{Player: "Ann", Email: "ann@example.com"}},
		},
		{
			name:  "short row",
			input: "Player,Email\nSolo\n",
			want:  []models.RosterEntry{{Player: "Solo"}},
		},
		{
			name:  "header only",
			input: "Player,Email\n",
			want:  []models.RosterEntry{},
		},
		{name: "empty input", input: "", wantErr: true},
		{name: "missing email column", input: "Player\nJohn\n", wantErr: true},
		{name: "missing player column", input: "Name,Email\nJohn,j@example.com\n", wantErr: true},
		{name: "unbalanced quote", input: "Player,Email\n\"John,j@example.com\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadPlayers(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Player"},
		[]interface{}{"Ann"},
		[]interface{}{"Ben"},
	)

	names, err := ReadPlayers(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Ben"}, names)
}

func TestReadEmails(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Player", "Email"},
		[]interface{}{"Ann", "ann@example.com"},
		[]interface{}{"Ben"},
	)

	list, err := ReadEmails(buf)
	require.NoError(t, err)
	assert.Equal(t, []models.RosterEntry{
		{Player: "Ann", Email: "ann@example.com"},
		{Player: "Ben"},
	}, list)
}

func TestReadWorkbookRejectsBadInput(t *testing.T) {
	_, err := ReadPlayers(strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadEmails(workbook(t, []interface{}{"Player"}, []interface{}{"Ann"}))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestMerge(t *testing.T) {
	players := []string{"Ann", "Ben", "Cat"}
	emails := []models.RosterEntry{
		{Player: "Cat", Email: "cat@example.com"},
		{Player: "Ann", Email: "ann@example.com"},
		{Player: "Ann", Email: "ann2@example.com"},
		{Player: "Zed", Email: "zed@example.com"},
	}

	got := Merge(players, emails)
	assert.Equal(t, []models.RosterEntry{
		{Player: "Ann", Email: "ann@example.com"},
		{Player: "Ben"},
		{Player: "Cat", Email: "cat@example.com"},
	}, got)
}
