// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/voting"
)

type SessionHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewSessionHandler(svc *voting.Service, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{svc: svc, cfg: cfg}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, err := h.svc.Sessions().Create(req.Title, req.Candidates)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	slog.Info("session created", "session_id", session.ID, "title", session.Title)

	middleware.JSONResponse(w, http.StatusCreated, session)
}

// End handles POST /sessions/{id}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	session, err := h.svc.Sessions().End(sessionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	slog.Info("session ended", "session_id", session.ID)

	middleware.JSONResponse(w, http.StatusOK, session)
}

// Delete handles DELETE /sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	report, err := h.svc.Sessions().Delete(sessionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	slog.Info("session deleted",
		"session_id", sessionID,
		"deleted_ballots", report.DeletedBallotCount,
	)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteSessionResponse{
		Message:            "Session deleted",
		DeletedSession:     report.Session.Title,
		DeletedBallotCount: report.DeletedBallotCount,
	})
}

// ListAll handles GET /sessions
func (h *SessionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.Sessions().ListAll()
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sessions)
}

// GetActive handles GET /sessions/active
func (h *SessionHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Sessions().GetActive()
	if err != nil {
		writeVotingError(w, err)
		return
	}
	if session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session)
}
