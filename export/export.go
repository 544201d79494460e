// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
)

// Sheet names, in workbook order
const (
	SheetPlayers = "Players"
	SheetVoters  = "Voters"
	SheetMatches = "Matches"
	SheetVotes   = "Votes"
)

// VoteRow is a vote with every id resolved to a name.
type VoteRow struct {
	ID    int64
	Match string
	Voter string
	Three string
	Two   string
	One   string
}

type Report struct {
	Players []models.Player
	Voters  []models.Voter
	Matches []models.Match
	Votes   []VoteRow
}

// Build reads the whole store. Voter tokens are cleared so they never reach
// an exported file.
func Build(ctx context.Context, store db.Store) (*Report, error) {
	players, err := store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	voters, err := store.ListVoters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	matches, err := store.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	votes, err := store.ListAllVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	playerNames := make(map[int64]string, len(players))
	for _, p := range players {
		playerNames[p.ID] = p.Name
	}
	voterNames := make(map[int64]string, len(voters))
	for i := range voters {
		voterNames[voters[i].ID] = voters[i].Name
		voters[i].Token = ""
	}
	matchNames := make(map[int64]string, len(matches))
	for _, m := range matches {
		matchNames[m.ID] = m.Name
	}

	rows := make([]VoteRow, 0, len(votes))
	for _, v := range votes {
		rows = append(rows, VoteRow{
			ID:    v.ID,
			Match: matchNames[v.MatchID],
			Voter: voterNames[v.VoterID],
			Three: playerNames[v.Player3],
			Two:   playerNames[v.Player2],
			One:   playerNames[v.Player1],
		})
	}

	return &Report{Players: players, Voters: voters, Matches: matches, Votes: rows}, nil
}

// WriteWorkbook writes the report as an xlsx workbook with one sheet per table.
func WriteWorkbook(rep *Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetPlayers, []interface{}{"id", "name"}, playerRows(rep.Players)},
		{SheetVoters, []interface{}{"id", "name", "email"}, voterRows(rep.Voters)},
		{SheetMatches, []interface{}{"id", "name"}, matchRows(rep.Matches)},
		{SheetVotes, []interface{}{"id", "match_name", "voter_name", "3_votes_for", "2_votes_for", "1_vote_for"}, voteRows(rep.Votes)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}

		if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
			return err
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return err
			}
		}
	}
	f.SetActiveSheet(0)

	_, err := f.WriteTo(w)
	return err
}

func playerRows(players []models.Player) [][]interface{} {
	rows := make([][]interface{}, 0, len(players))
	for _, p := range players {
		rows = append(rows, []interface{}{p.ID, p.Name})
	}
	return rows
}

func voterRows(voters []models.Voter) [][]interface{} {
	rows := make([][]interface{}, 0, len(voters))
	for _, v := range voters {
		rows = append(rows, []interface{}{v.ID, v.Name, v.Email})
	}
	return rows
}

func matchRows(matches []models.Match) [][]interface{} {
	rows := make([][]interface{}, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []interface{}{m.ID, m.Name})
	}
	return rows
}

func voteRows(votes []VoteRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(votes))
	for _, v := range votes {
		rows = append(rows, []interface{}{v.ID, v.Match, v.Voter, v.Three, v.Two, v.One})
	}
	return rows
}
