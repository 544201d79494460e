// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/db"
)

// Failure names a voter whose link could not be delivered.
type Failure struct {
	Voter string
	Email string
	Err   error
}

// Report is the outcome of one Dispatch.
type Report struct {
	Sent   int
	Failed []Failure
}

// FailedNames lists the voters whose delivery failed, in dispatch order.
func (r Report) FailedNames() []string {
	names := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		names = append(names, f.Voter)
	}
	return names
}

// VoteLink builds the personal voting URL for one voter.
func VoteLink(baseURL string, matchID int64, token string) string {
	return fmt.Sprintf("%s/vote/%d?token=%s", strings.TrimRight(baseURL, "/"), matchID, url.QueryEscape(token))
}

// Subject is the email subject used for a round.
func Subject(matchName string) string {
	return "Vote 3-2-1 for " + matchName
}

func body(voterName, matchName, link string) string {
	return fmt.Sprintf("Hi %s,\n\nPlease submit your 3-2-1 votes for %s at this link:\n%s\n\nThanks!", voterName, matchName, link)
}

// Dispatch sends every voter their link for the match. Delivery is best
// effort: a failed recipient is logged and recorded in the report, and the
// remaining voters are still attempted. The returned error is reserved for
// store failures and an unknown match (db.ErrMatchNotFound).
func Dispatch(ctx context.Context, store db.Store, n Notifier, baseURL string, matchID int64) (Report, error) {
	var report Report

	match, err := store.GetMatch(ctx, matchID)
	if err != nil {
		return report, err
	}

	voters, err := store.ListVoters(ctx)
	if err != nil {
		return report, fmt.Errorf("list voters: %w", err)
	}

	subject := Subject(match.Name)
	for _, v := range voters {
		if err := ctx.Err(); err != nil {
			report.Failed = append(report.Failed, Failure{Voter: v.Name, Email: v.Email, Err: err})
			continue
		}

		msg := Message{
			To:      v.Email,
			Subject: subject,
			Body:    body(v.Name, match.Name, VoteLink(baseURL, match.ID, v.Token)),
		}
		if err := n.Send(ctx, msg); err != nil {
			log.Error().Err(err).Int64("match_id", match.ID).Str("voter", v.Name).Msg("failed to deliver voting link")
			report.Failed = append(report.Failed, Failure{Voter: v.Name, Email: v.Email, Err: err})
			continue
		}
		report.Sent++
	}

	log.Info().
		Int64("match_id", match.ID).
		Int("sent", report.Sent).
		Int("failed", len(report.Failed)).
		Msg("voting links dispatched")

	return report, nil
}
