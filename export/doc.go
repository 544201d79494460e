// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export dumps the store to an xlsx workbook with the sheets
// Players, Voters, Matches and Votes. Vote rows carry names instead of ids.
package export
