// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers personal voting links to voters.

# Notifiers

	n := notify.New(cfg)

New returns an SMTPNotifier when VOTE_APP_EMAIL and VOTE_APP_EMAIL_PASS are
set, otherwise a LogNotifier that writes each message to the log.

# Dispatch

	report, err := notify.Dispatch(ctx, store, n, cfg.BaseURL, match.ID)

Each voter receives "Vote 3-2-1 for {match}" with a link of the form

	{BASE_URL}/vote/{matchID}?token={token}

Per-recipient failures end up in report.Failed; tokens are never logged
by Dispatch itself.
*/
package notify
