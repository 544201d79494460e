// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter token generation and admin key checks.

# Voter Tokens

Voter tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateVoterToken()

Tokens are URL-safe base64 encoded without padding so they can be placed
in a voting link as-is. A voter keeps the same token for every match.

# Admin Key

The admin setup pages are guarded by a single shared secret from config:

	err := auth.ValidateAdminKey(r.URL.Query().Get("key"), cfg.AdminKey)

Comparison is constant time. An empty configured key returns
ErrAdminDisabled for every request.
*/
package auth
