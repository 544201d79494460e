// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/auth"
)

// AdminKeyHeader is accepted as an alternative to the ?key= query parameter
const AdminKeyHeader = "X-Admin-Key"

// WithLogging logs each request's start and completion with its final status
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Msg("request started")

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		// Log completion; the query string is left out because it carries voter tokens
		log.Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	})
}

// RequireAdminKey rejects requests whose ?key= (or X-Admin-Key header) does
// not match the configured admin key. An empty configured key rejects every request.
func RequireAdminKey(configured string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.URL.Query().Get("key")
			if provided == "" {
				provided = r.Header.Get(AdminKeyHeader)
			}

			if err := auth.ValidateAdminKey(provided, configured); err != nil {
				evt := log.Warn()
				if errors.Is(err, auth.ErrAdminDisabled) {
					evt = log.Debug()
				}
				evt.Err(err).Str("path", r.URL.Path).Str("remote", r.RemoteAddr).Msg("admin request rejected")

				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
