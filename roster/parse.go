// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/vote321/models"
)

// Column headers recognised in roster input
const (
	ColumnPlayer = "Player"
	ColumnEmail  = "Email"
)

// ErrMalformed wraps every input problem detected before the store is touched.
var ErrMalformed = errors.New("malformed roster")

// ParseCSV reads pasted "Player,Email" text. The header row is required and
// must name both columns; extra columns are ignored.
func ParseCSV(r io.Reader) ([]models.RosterEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return entries(rows, ColumnPlayer, ColumnEmail)
}

// ReadPlayers reads the Player column of the first sheet of an xlsx workbook.
func ReadPlayers(r io.Reader) ([]string, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	list, err := entries(rows, ColumnPlayer)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Player)
	}
	return names, nil
}

// ReadEmails reads the Player and Email columns of the first sheet of an xlsx workbook.
func ReadEmails(r io.Reader) ([]models.RosterEntry, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}
	return entries(rows, ColumnPlayer, ColumnEmail)
}

// Merge left-joins the player list with the email table on player name.
// Players without a matching email row keep an empty Email. When a player
// appears more than once in the email table the first row wins.
func Merge(players []string, emails []models.RosterEntry) []models.RosterEntry {
	byName := make(map[string]string, len(emails))
	for _, e := range emails {
		if _, seen := byName[e.Player]; !seen {
			byName[e.Player] = e.Email
		}
	}

	merged := make([]models.RosterEntry, 0, len(players))
	for _, p := range players {
		merged = append(merged, models.RosterEntry{Player: p, Email: byName[p]})
	}
	return merged
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return rows, nil
}

// entries maps header-keyed rows to roster entries. Every name in columns
// must be present in the header row. Cells are trimmed; rows whose cells are
// all blank are dropped, rows with a blank player are kept for Import to skip.
func entries(rows [][]string, columns ...string) ([]models.RosterEntry, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w: missing %q column", ErrMalformed, c)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	list := make([]models.RosterEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		e := models.RosterEntry{Player: cell(row, ColumnPlayer), Email: cell(row, ColumnEmail)}
		if e.Player == "" && e.Email == "" {
			continue
		}
		list = append(list, e)
	}
	return list, nil
}
