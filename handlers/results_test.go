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

func TestSessionResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(voting.NewService(conn), cfg)

	sessionID := testutil.CreateTestSession(t, conn, models.StatusActive, "Pizza", "Sushi", "Tacos")
	testutil.CreateTestBallot(t, conn, sessionID, "voter-1", 1)
	testutil.CreateTestBallot(t, conn, sessionID, "voter-2", 1)
	testutil.CreateTestBallot(t, conn, sessionID, "voter-3", 3)

	req := testutil.MakeRequest("GET", "/sessions/"+sessionID+"/results", nil, nil)
	req.SetPathValue("id", sessionID)
	w := httptest.NewRecorder()

	handler.SessionResults(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.SessionResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Session.ID != sessionID {
		t.Errorf("Expected session %s, got %s", sessionID, resp.Session.ID)
	}
	if len(resp.Tally) != 3 {
		t.Fatalf("Expected 3 tally entries, got %d", len(resp.Tally))
	}

	counts := map[string]int{}
	for _, entry := range resp.Tally {
		counts[entry.Candidate] = entry.Count
	}
	if counts["Pizza"] != 2 {
		t.Errorf("Expected Pizza count 2, got %d", counts["Pizza"])
	}
	if counts["Sushi"] != 0 {
		t.Errorf("Expected Sushi count 0, got %d", counts["Sushi"])
	}
	if counts["Tacos"] != 1 {
		t.Errorf("Expected Tacos count 1, got %d", counts["Tacos"])
	}

	if len(resp.Ballots) != 3 {
		t.Errorf("Expected 3 ballots in roll, got %d", len(resp.Ballots))
	}
}

func TestSessionResultsNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(voting.NewService(conn), cfg)

	req := testutil.MakeRequest("GET", "/sessions/nonexistent/results", nil, nil)
	req.SetPathValue("id", "nonexistent")
	w := httptest.NewRecorder()

	handler.SessionResults(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestAllBallots(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(voting.NewService(conn), cfg)

	first := testutil.CreateTestSession(t, conn, models.StatusFinished)
	second := testutil.CreateTestSession(t, conn, models.StatusActive)
	testutil.CreateTestBallot(t, conn, first, "voter-1", 1)
	testutil.CreateTestBallot(t, conn, second, "voter-1", 2)
	testutil.CreateTestBallot(t, conn, second, "voter-2", 2)

	req := testutil.MakeRequest("GET", "/votes", nil, nil)
	w := httptest.NewRecorder()

	handler.AllBallots(w, req)

	testutil.AssertStatus(t, w, 200)

	var ballots []models.BallotRecord
	testutil.AssertJSON(t, w, &ballots)

	if len(ballots) != 3 {
		t.Errorf("Expected 3 ballots across sessions, got %d", len(ballots))
	}
	for _, b := range ballots {
		if b.SessionTitle == "" {
			t.Errorf("Expected session title on ballot %s", b.ID)
		}
	}
}
