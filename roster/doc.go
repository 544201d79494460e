// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package roster parses roster input (pasted CSV or xlsx workbooks) and
// registers players, voters and a new round in the store.
package roster
