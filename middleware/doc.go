// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware for the router.

# Request Logging

Wrap a handler with request logging:

	r.Use(middleware.WithLogging)

Logs request start at debug level and completion (status, bytes,
duration_ms) at info level. The query string is never logged because voting
links carry the voter token there.

# Admin Guard

	r.With(middleware.RequireAdminKey(cfg.AdminKey)).Get("/admin/setup", ...)

The key is read from ?key= or the X-Admin-Key header. Mismatches, and any
request while no admin key is configured, get 403 "Forbidden".
*/
package middleware
