// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/geo"
	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/voting"
)

type VoteHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVoteHandler(svc *voting.Service, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{svc: svc, cfg: cfg}
}

// Submit handles POST /votes
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	voter, ok := middleware.VoterFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Voter identity required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	submit := voting.SubmitRequest{SessionID: req.SessionID}
	if req.Choice != nil {
		submit.Choice = *req.Choice
	}
	if req.UserLat != nil && req.UserLng != nil {
		submit.Coordinate = &geo.Coordinate{Lat: *req.UserLat, Lng: *req.UserLng}
	}

	receipt, err := h.svc.Submit(submit, voter)
	if err != nil {
		slog.Info("vote rejected",
			"session_id", req.SessionID,
			"client_ip", middleware.GetClientIP(r),
			"reason", err,
		)
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Message:             "Vote submitted",
		BallotID:            receipt.BallotID,
		Choice:              receipt.Choice,
		CandidateName:       receipt.CandidateName,
		DistanceMeters:      receipt.DistanceMeters,
		AllowedRadiusMeters: receipt.AllowedRadiusMeters,
	})
}

// MyBallot handles GET /sessions/{id}/my-ballot
// Lets the client tell the voter they already voted without attempting
// a submission.
func (h *VoteHandler) MyBallot(w http.ResponseWriter, r *http.Request) {
	voter, ok := middleware.VoterFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Voter identity required")
		return
	}

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

	ballot, err := h.svc.Ledger().Ballot(sessionID, voter.ID)
	if err != nil {
		writeVotingError(w, err)
		return
	}
	if ballot == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No ballot for this session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot)
}
