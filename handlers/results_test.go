// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/danielhkuo/vote321/db/dbmock"
	"github.com/danielhkuo/vote321/models"
	"github.com/danielhkuo/vote321/testutil"
)

func TestGetResults(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewResultsHandler(store, NewRender())

	p := testutil.CreateTestPlayers(t, store, "A", "B", "C", "D")
	v1 := testutil.CreateTestVoter(t, store, "V1", "v1@example.com")
	v2 := testutil.CreateTestVoter(t, store, "V2", "v2@example.com")

	voted := testutil.CreateTestMatch(t, store, "Round 1")
	testutil.SubmitTestVote(t, store, voted.ID, v1.ID, p[0].ID, p[1].ID, p[2].ID)
	testutil.SubmitTestVote(t, store, voted.ID, v2.ID, p[0].ID, p[2].ID, p[1].ID)

	empty := testutil.CreateTestMatch(t, store, "Round 2")

	tests := []struct {
		name           string
		matchID        string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.ResultsResponse)
	}{
		{
			name:           "tallied standings",
			matchID:        fmt.Sprint(voted.ID),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ResultsResponse) {
				if resp.VoteCount != 2 {
					t.Errorf("Expected 2 votes, got %d", resp.VoteCount)
				}
				want := []struct {
					name   string
					points int
				}{{"A", 6}, {"B", 3}, {"C", 3}}
				if len(resp.Standings) != len(want) {
					t.Fatalf("Expected %d standings, got %+v", len(want), resp.Standings)
				}
				for i, w := range want {
					if resp.Standings[i].Name != w.name || resp.Standings[i].Points != w.points {
						t.Errorf("Standing %d: expected %s=%d, got %+v", i, w.name, w.points, resp.Standings[i])
					}
				}
			},
		},
		{
			name:           "match without votes",
			matchID:        fmt.Sprint(empty.ID),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ResultsResponse) {
				if resp.Standings == nil || len(resp.Standings) != 0 {
					t.Errorf("Expected empty standings list, got %+v", resp.Standings)
				}
				if resp.Match.Name != "Round 2" {
					t.Errorf("Expected match 'Round 2', got '%s'", resp.Match.Name)
				}
			},
		},
		{
			name:           "unknown match",
			matchID:        "999",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric match",
			matchID:        "latest",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withMatchID(httptest.NewRequest("GET", "/results/"+tt.matchID+"?format=json", nil), tt.matchID)
			w := httptest.NewRecorder()

			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.ResultsResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
			if tt.expectedStatus == http.StatusNotFound {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != "Not Found" {
					t.Errorf("Expected error 'Not Found', got '%s'", resp.Error)
				}
			}
		})
	}
}

func TestGetResultsHTML(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewResultsHandler(store, NewRender())

	p := testutil.CreateTestPlayers(t, store, "Ann", "Ben", "Cat", "Dan")
	voter := testutil.CreateTestVoter(t, store, "Eve", "eve@example.com")
	match := testutil.CreateTestMatch(t, store, "Semi Final")
	testutil.SubmitTestVote(t, store, match.ID, voter.ID, p[2].ID, p[0].ID, p[1].ID)

	id := fmt.Sprint(match.ID)
	req := withMatchID(httptest.NewRequest("GET", "/results/"+id, nil), id)
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=UTF-8" {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
	body := w.Body.String()
	assertBodyContains(t, body, "Results for Semi Final")
	assertBodyContains(t, body, "<td>Cat</td>")
	if strings.Contains(body, "<td>Dan</td>") {
		t.Errorf("Zero-point player must not be listed. Body: %s", body)
	}

	req = withMatchID(httptest.NewRequest("GET", "/results/999", nil), "999")
	w = httptest.NewRecorder()
	handler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetResultsStoreFailure(t *testing.T) {
	store := &dbmock.Store{}
	store.On("GetMatch", mock.Anything, int64(1)).Return(&models.Match{ID: 1, Name: "R"}, nil)
	store.On("ListPlayers", mock.Anything).Return(nil, errors.New("database is locked"))

	handler := NewResultsHandler(store, NewRender())
	req := withMatchID(httptest.NewRequest("GET", "/results/1?format=json", nil), "1")
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	store.AssertNotCalled(t, "ListVotes", mock.Anything, mock.Anything)
}
