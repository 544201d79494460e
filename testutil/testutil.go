// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/vote321/auth"
	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/models"
)

// TestDBURL is an in-memory sqlite database, fresh per store
const TestDBURL = ":memory:"

// TestAdminKey is the admin secret used by GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestStore opens a fresh in-memory store with the full schema
func SetupTestStore(t *testing.T) db.Store {
	t.Helper()

	store, err := db.Open(context.Background(), cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		BaseURL:      "http://votes.test",
		AdminKey:     TestAdminKey,
		LogLevel:     "error",
		SMTPHost:     "smtp.invalid",
		SMTPPort:     465,
	}
}

// CreateTestPlayers adds players in the given order and returns them
func CreateTestPlayers(t *testing.T, store db.Store, names ...string) []models.Player {
	t.Helper()

	players := make([]models.Player, 0, len(names))
	for _, name := range names {
		p, _, err := store.EnsurePlayer(context.Background(), name)
		if err != nil {
			t.Fatalf("Failed to create test player: %v", err)
		}
		players = append(players, p)
	}

	return players
}

// CreateTestVoter adds a voter with a fresh token
func CreateTestVoter(t *testing.T, store db.Store, name, email string) models.Voter {
	t.Helper()

	token, _ := auth.GenerateVoterToken()
	v, _, err := store.EnsureVoter(context.Background(), models.Voter{Name: name, Email: email, Token: token})
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return v
}

// CreateTestMatch adds a match and returns it
func CreateTestMatch(t *testing.T, store db.Store, name string) *models.Match {
	t.Helper()

	m, err := store.CreateMatch(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test match: %v", err)
	}

	return m
}

// SubmitTestVote records a 3-2-1 vote directly in the store
func SubmitTestVote(t *testing.T, store db.Store, matchID, voterID, p3, p2, p1 int64) models.Vote {
	t.Helper()

	v := models.Vote{MatchID: matchID, VoterID: voterID, Player3: p3, Player2: p2, Player1: p1}
	if err := store.InsertVote(context.Background(), &v); err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return v
}

// MakeFormRequest creates an HTTP test request with a url-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
