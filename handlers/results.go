// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/voting"
)

type ResultsHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *voting.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// SessionResults handles GET /sessions/{id}/results
// Returns the tally plus the ballot roll for one session.
func (h *ResultsHandler) SessionResults(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	session, err := h.svc.Sessions().GetByID(sessionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}
	if session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	tally, err := h.svc.Ledger().Tally(sessionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	ballots, err := h.svc.Ledger().ListBallots(sessionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionResultsResponse{
		Session: *session,
		Tally:   tally,
		Ballots: ballots,
	})
}

// AllBallots handles GET /votes
// The full ballot roll across sessions, newest first.
func (h *ResultsHandler) AllBallots(w http.ResponseWriter, r *http.Request) {
	ballots, err := h.svc.Ledger().ListAllBallots()
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballots)
}
