// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jihoonp/venuevote/models"
)

// SessionStore manages voting-session lifecycle: create (active),
// end (one-way active -> finished), delete (finished only, cascades
// to ballots).
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create starts a new active session. Title and at least two non-empty
// candidate names are required; names are trimmed and empty entries
// dropped.
func (s *SessionStore) Create(title string, candidates []string) (models.VotingSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.VotingSession{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	trimmed := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c != "" {
			trimmed = append(trimmed, c)
		}
	}
	if len(trimmed) < 2 {
		return models.VotingSession{}, fmt.Errorf("%w: at least two candidates are required", ErrInvalidInput)
	}

	session := models.VotingSession{
		ID:         uuid.NewString(),
		Title:      title,
		Candidates: trimmed,
		Status:     models.StatusActive,
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.VotingSession{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO voting_session (id, title, status, created_at)
		VALUES ($1, $2, $3, $4)
	`, session.ID, session.Title, session.Status, session.CreatedAt)
	if err != nil {
		return models.VotingSession{}, fmt.Errorf("failed to insert session: %w", err)
	}

	for i, name := range trimmed {
		_, err = tx.Exec(`
			INSERT INTO candidate (session_id, position, name)
			VALUES ($1, $2, $3)
		`, session.ID, i+1, name)
		if err != nil {
			return models.VotingSession{}, fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.VotingSession{}, fmt.Errorf("failed to commit session: %w", err)
	}

	return session, nil
}

// End marks a session finished. Ending an already-finished session is
// a no-op that returns the existing record unchanged.
func (s *SessionStore) End(sessionID string) (models.VotingSession, error) {
	session, err := s.GetByID(sessionID)
	if err != nil {
		return models.VotingSession{}, err
	}
	if session == nil {
		return models.VotingSession{}, ErrSessionNotFound
	}
	if session.Status == models.StatusFinished {
		return *session, nil
	}

	finishedAt := time.Now().UTC()
	_, err = s.db.Exec(`
		UPDATE voting_session SET status = $1, finished_at = $2 WHERE id = $3
	`, models.StatusFinished, finishedAt, sessionID)
	if err != nil {
		return models.VotingSession{}, fmt.Errorf("failed to end session: %w", err)
	}

	session.Status = models.StatusFinished
	session.FinishedAt = &finishedAt
	return *session, nil
}

// GetActive returns the most-recently-created active session, or nil.
// Most-recent-wins is the deliberate tie-break when multiple sessions
// are active.
func (s *SessionStore) GetActive() (*models.VotingSession, error) {
	row := s.db.QueryRow(`
		SELECT id, title, status, created_at, finished_at
		FROM voting_session
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, models.StatusActive)

	return s.scanSession(row)
}

// GetByID returns the session with its ordered candidates, or nil.
func (s *SessionStore) GetByID(sessionID string) (*models.VotingSession, error) {
	row := s.db.QueryRow(`
		SELECT id, title, status, created_at, finished_at
		FROM voting_session
		WHERE id = $1
	`, sessionID)

	return s.scanSession(row)
}

// ListAll returns every session, newest first.
func (s *SessionStore) ListAll() ([]models.VotingSession, error) {
	rows, err := s.db.Query(`
		SELECT id, title, status, created_at, finished_at
		FROM voting_session
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.VotingSession{}
	for rows.Next() {
		var session models.VotingSession
		if err := rows.Scan(&session.ID, &session.Title, &session.Status, &session.CreatedAt, &session.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		candidates, err := s.candidates(session.ID)
		if err != nil {
			return nil, err
		}
		session.Candidates = candidates
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Delete removes a finished session and all its ballots in one
// transaction, reporting how many ballots went with it. Active
// sessions must be ended first.
func (s *SessionStore) Delete(sessionID string) (models.DeletionReport, error) {
	session, err := s.GetByID(sessionID)
	if err != nil {
		return models.DeletionReport{}, err
	}
	if session == nil {
		return models.DeletionReport{}, ErrSessionNotFound
	}
	if session.Status == models.StatusActive {
		return models.DeletionReport{}, ErrSessionActive
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.DeletionReport{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM ballot WHERE session_id = $1`, sessionID)
	if err != nil {
		return models.DeletionReport{}, fmt.Errorf("failed to delete ballots: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return models.DeletionReport{}, fmt.Errorf("failed to count deleted ballots: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM candidate WHERE session_id = $1`, sessionID); err != nil {
		return models.DeletionReport{}, fmt.Errorf("failed to delete candidates: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM voting_session WHERE id = $1`, sessionID); err != nil {
		return models.DeletionReport{}, fmt.Errorf("failed to delete session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.DeletionReport{}, fmt.Errorf("failed to commit deletion: %w", err)
	}

	return models.DeletionReport{Session: *session, DeletedBallotCount: int(deleted)}, nil
}

func (s *SessionStore) scanSession(row *sql.Row) (*models.VotingSession, error) {
	var session models.VotingSession
	err := row.Scan(&session.ID, &session.Title, &session.Status, &session.CreatedAt, &session.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	candidates, err := s.candidates(session.ID)
	if err != nil {
		return nil, err
	}
	session.Candidates = candidates
	return &session, nil
}

func (s *SessionStore) candidates(sessionID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT name FROM candidate WHERE session_id = $1 ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
