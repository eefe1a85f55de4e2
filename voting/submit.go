// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"log/slog"

	"github.com/jihoonp/venuevote/geo"
	"github.com/jihoonp/venuevote/models"
)

// SubmitRequest is one vote attempt. Coordinate is nil when the client
// sent no location.
type SubmitRequest struct {
	SessionID  string
	Choice     int
	Coordinate *geo.Coordinate
}

// Service orchestrates vote submission: session state, choice range,
// geofence, then the atomic duplicate-checked insert.
type Service struct {
	sessions *SessionStore
	ledger   *BallotLedger
	fence    *VenueFence
}

func NewService(db *sql.DB) *Service {
	return &Service{
		sessions: NewSessionStore(db),
		ledger:   NewBallotLedger(db),
		fence:    NewVenueFence(db),
	}
}

func (s *Service) Sessions() *SessionStore { return s.sessions }
func (s *Service) Ledger() *BallotLedger   { return s.ledger }
func (s *Service) Fence() *VenueFence      { return s.fence }

// Submit runs the guard chain in order. Cheap structural checks come
// first, the store lookup and fence check after, and the duplicate
// check last, immediately before the insert that enforces it. The
// first failing guard wins and nothing is written before the insert.
func (s *Service) Submit(req SubmitRequest, voter models.Voter) (models.SubmissionReceipt, error) {
	if req.SessionID == "" || req.Choice == 0 {
		return models.SubmissionReceipt{}, ErrMissingFields
	}
	if req.Coordinate == nil {
		return models.SubmissionReceipt{}, ErrMissingLocation
	}

	session, err := s.sessions.GetByID(req.SessionID)
	if err != nil {
		return models.SubmissionReceipt{}, err
	}
	if session == nil {
		return models.SubmissionReceipt{}, ErrSessionNotFound
	}
	if session.Status != models.StatusActive {
		return models.SubmissionReceipt{}, ErrSessionNotActive
	}

	if req.Choice < 1 || req.Choice > len(session.Candidates) {
		return models.SubmissionReceipt{}, &InvalidChoiceError{Choice: req.Choice, Candidates: len(session.Candidates)}
	}

	check, err := s.fence.Check(*req.Coordinate)
	if err != nil {
		return models.SubmissionReceipt{}, err
	}
	if !check.Inside {
		return models.SubmissionReceipt{}, &OutsideFenceError{
			DistanceMeters:      check.DistanceMeters,
			AllowedRadiusMeters: check.AllowedRadiusMeters,
		}
	}

	// Fast-path duplicate check for a friendly error; the insert's
	// UNIQUE constraint is what actually decides the race.
	voted, err := s.ledger.HasVoted(req.SessionID, voter.ID)
	if err != nil {
		return models.SubmissionReceipt{}, err
	}
	if voted {
		return models.SubmissionReceipt{}, ErrDuplicateVote
	}

	if err := s.ledger.UpsertVoter(voter); err != nil {
		return models.SubmissionReceipt{}, err
	}

	ballot, err := s.ledger.Record(req.SessionID, voter.ID, req.Choice, *req.Coordinate, check.DistanceMeters)
	if err != nil {
		return models.SubmissionReceipt{}, err
	}

	slog.Info("ballot recorded",
		"session_id", req.SessionID,
		"ballot_id", ballot.ID,
		"choice", req.Choice,
		"distance_m", check.DistanceMeters,
	)

	return models.SubmissionReceipt{
		BallotID:            ballot.ID,
		Choice:              req.Choice,
		CandidateName:       session.Candidates[req.Choice-1],
		DistanceMeters:      check.DistanceMeters,
		AllowedRadiusMeters: check.AllowedRadiusMeters,
	}, nil
}
