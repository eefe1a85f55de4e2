// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/testutil"
	"github.com/jihoonp/venuevote/voting"
)

func TestCreateSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(voting.NewService(conn), cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid session",
			requestBody:    models.CreateSessionRequest{Title: "Best Speaker", Candidates: []string{"Alice", "Bob"}},
			expectedStatus: 201,
		},
		{
			name:           "missing title",
			requestBody:    models.CreateSessionRequest{Candidates: []string{"Alice", "Bob"}},
			expectedStatus: 400,
		},
		{
			name:           "too few candidates",
			requestBody:    models.CreateSessionRequest{Title: "Best Speaker", Candidates: []string{"Alice"}},
			expectedStatus: 400,
		},
		{
			name:           "invalid JSON shape",
			requestBody:    map[string]interface{}{"title": "X", "candidates": "not-a-list"},
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/sessions", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == 201 {
				var session models.VotingSession
				testutil.AssertJSON(t, w, &session)
				if session.ID == "" || session.Status != models.StatusActive {
					t.Errorf("Create returned %+v, want active session with id", session)
				}
			}
		})
	}
}

func TestEndSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(voting.NewService(conn), cfg)

	sessionID := testutil.CreateTestSession(t, conn, models.StatusActive)

	req := testutil.MakeRequest("POST", "/sessions/"+sessionID+"/end", nil, nil)
	req.SetPathValue("id", sessionID)
	w := httptest.NewRecorder()
	handler.End(w, req)
	testutil.AssertStatus(t, w, 200)

	var session models.VotingSession
	testutil.AssertJSON(t, w, &session)
	if session.Status != models.StatusFinished {
		t.Errorf("End returned status %q, want finished", session.Status)
	}

	// Unknown session
	req = testutil.MakeRequest("POST", "/sessions/nope/end", nil, nil)
	req.SetPathValue("id", "nope")
	w = httptest.NewRecorder()
	handler.End(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestDeleteSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(voting.NewService(conn), cfg)

	active := testutil.CreateTestSession(t, conn, models.StatusActive)
	finished := testutil.CreateTestSession(t, conn, models.StatusFinished)
	testutil.CreateTestBallot(t, conn, finished, "voter-1", 1)
	testutil.CreateTestBallot(t, conn, finished, "voter-2", 2)

	// Active sessions are delete-blocked
	req := testutil.MakeRequest("DELETE", "/sessions/"+active, nil, nil)
	req.SetPathValue("id", active)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 409)

	// Finished sessions delete with their ballots
	req = testutil.MakeRequest("DELETE", "/sessions/"+finished, nil, nil)
	req.SetPathValue("id", finished)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.DeleteSessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.DeletedBallotCount != 2 {
		t.Errorf("Delete reported %d ballots, want 2", resp.DeletedBallotCount)
	}
}

func TestGetActiveSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(voting.NewService(conn), cfg)

	// Nothing active
	req := testutil.MakeRequest("GET", "/sessions/active", nil, nil)
	w := httptest.NewRecorder()
	handler.GetActive(w, req)
	testutil.AssertStatus(t, w, 404)

	sessionID := testutil.CreateTestSession(t, conn, models.StatusActive, "Alice", "Bob")

	req = testutil.MakeRequest("GET", "/sessions/active", nil, nil)
	w = httptest.NewRecorder()
	handler.GetActive(w, req)
	testutil.AssertStatus(t, w, 200)

	var session models.VotingSession
	testutil.AssertJSON(t, w, &session)
	if session.ID != sessionID {
		t.Errorf("GetActive returned %s, want %s", session.ID, sessionID)
	}
	if len(session.Candidates) != 2 {
		t.Errorf("GetActive candidates = %v, want 2 entries", session.Candidates)
	}
}

func TestListSessions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(voting.NewService(conn), cfg)

	testutil.CreateTestSession(t, conn, models.StatusActive)
	testutil.CreateTestSession(t, conn, models.StatusFinished)

	req := testutil.MakeRequest("GET", "/sessions", nil, nil)
	w := httptest.NewRecorder()
	handler.ListAll(w, req)
	testutil.AssertStatus(t, w, 200)

	var sessions []models.VotingSession
	testutil.AssertJSON(t, w, &sessions)
	if len(sessions) != 2 {
		t.Errorf("ListAll returned %d sessions, want 2", len(sessions))
	}
}
