// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"

	"github.com/danielhkuo/vote321/models"
)

// Tally sums 3-2-1 points per player across votes.
// Players with zero points are omitted. Standings are ordered by points
// descending, ties by player id (insertion order). Selections that do not
// reference a known player are ignored.
func Tally(players []models.Player, votes []models.Vote) []models.PlayerPoints {
	points := make(map[int64]int, len(players))
	for _, v := range votes {
		points[v.Player3] += models.PointsFirst
		points[v.Player2] += models.PointsSecond
		points[v.Player1] += models.PointsThird
	}

	standings := []models.PlayerPoints{}
	for _, p := range players {
		if pts := points[p.ID]; pts > 0 {
			standings = append(standings, models.PlayerPoints{
				PlayerID: p.ID,
				Name:     p.Name,
				Points:   pts,
			})
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})

	return standings
}
