// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jihoonp/venuevote/geo"
	"github.com/jihoonp/venuevote/models"
)

// BallotLedger records one ballot per (session, voter) pair. The
// uniqueness guarantee comes from the store's UNIQUE constraint, never
// from an in-process lock: the insert itself is the critical section.
type BallotLedger struct {
	db *sql.DB
}

func NewBallotLedger(db *sql.DB) *BallotLedger {
	return &BallotLedger{db: db}
}

// HasVoted reports whether voterID already has a ballot in the session.
func (l *BallotLedger) HasVoted(sessionID, voterID string) (bool, error) {
	var exists bool
	err := l.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM ballot WHERE session_id = $1 AND voter_id = $2
		)
	`, sessionID, voterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for prior ballot: %w", err)
	}
	return exists, nil
}

// Ballot returns the voter's ballot in the session, or nil.
func (l *BallotLedger) Ballot(sessionID, voterID string) (*models.Ballot, error) {
	var b models.Ballot
	err := l.db.QueryRow(`
		SELECT id, session_id, voter_id, choice, lat, lng, distance_m, cast_at
		FROM ballot WHERE session_id = $1 AND voter_id = $2
	`, sessionID, voterID).Scan(
		&b.ID, &b.SessionID, &b.VoterID, &b.Choice,
		&b.Coordinate.Lat, &b.Coordinate.Lng, &b.DistanceMeters, &b.CastAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query ballot: %w", err)
	}
	return &b, nil
}

// Record inserts a new ballot. A concurrent duplicate loses the insert
// race and gets ErrDuplicateVote, not a storage error.
func (l *BallotLedger) Record(sessionID, voterID string, choice int, coord geo.Coordinate, distanceMeters float64) (models.Ballot, error) {
	ballot := models.Ballot{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		VoterID:        voterID,
		Choice:         choice,
		Coordinate:     coord,
		DistanceMeters: distanceMeters,
		CastAt:         time.Now().UTC(),
	}

	_, err := l.db.Exec(`
		INSERT INTO ballot (id, session_id, voter_id, choice, lat, lng, distance_m, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ballot.ID, ballot.SessionID, ballot.VoterID, ballot.Choice,
		ballot.Coordinate.Lat, ballot.Coordinate.Lng, ballot.DistanceMeters, ballot.CastAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Ballot{}, ErrDuplicateVote
		}
		return models.Ballot{}, fmt.Errorf("failed to insert ballot: %w", err)
	}

	return ballot, nil
}

// Tally returns per-candidate counts for the session, ordered by
// choice. Candidates with zero ballots are included.
func (l *BallotLedger) Tally(sessionID string) ([]models.TallyEntry, error) {
	rows, err := l.db.Query(`
		SELECT c.position, c.name, COUNT(b.id)
		FROM candidate c
		LEFT JOIN ballot b ON b.session_id = c.session_id AND b.choice = c.position
		WHERE c.session_id = $1
		GROUP BY c.position, c.name
		ORDER BY c.position
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tally: %w", err)
	}
	defer rows.Close()

	tally := []models.TallyEntry{}
	for rows.Next() {
		var entry models.TallyEntry
		if err := rows.Scan(&entry.Choice, &entry.Candidate, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tally entry: %w", err)
		}
		tally = append(tally, entry)
	}
	return tally, rows.Err()
}

// ListBallots returns the session's ballots joined with voter display
// info, newest first.
func (l *BallotLedger) ListBallots(sessionID string) ([]models.BallotRecord, error) {
	rows, err := l.db.Query(`
		SELECT b.id, b.session_id, b.voter_id, b.choice, b.lat, b.lng, b.distance_m, b.cast_at,
		       COALESCE(v.name, ''), COALESCE(v.email, '')
		FROM ballot b
		LEFT JOIN voter v ON v.id = b.voter_id
		WHERE b.session_id = $1
		ORDER BY b.cast_at DESC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	return scanBallotRecords(rows, false)
}

// ListAllBallots returns every ballot across sessions with voter and
// session display info, newest first.
func (l *BallotLedger) ListAllBallots() ([]models.BallotRecord, error) {
	rows, err := l.db.Query(`
		SELECT b.id, b.session_id, b.voter_id, b.choice, b.lat, b.lng, b.distance_m, b.cast_at,
		       COALESCE(v.name, ''), COALESCE(v.email, ''), s.title
		FROM ballot b
		LEFT JOIN voter v ON v.id = b.voter_id
		JOIN voting_session s ON s.id = b.session_id
		ORDER BY b.cast_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	return scanBallotRecords(rows, true)
}

// UpsertVoter refreshes the voter's display info from auth claims.
func (l *BallotLedger) UpsertVoter(voter models.Voter) error {
	_, err := l.db.Exec(`
		INSERT INTO voter (id, email, name, first_seen_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name
	`, voter.ID, voter.Email, voter.Name, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert voter: %w", err)
	}
	return nil
}

func scanBallotRecords(rows *sql.Rows, withSessionTitle bool) ([]models.BallotRecord, error) {
	records := []models.BallotRecord{}
	for rows.Next() {
		var rec models.BallotRecord
		dest := []interface{}{
			&rec.ID, &rec.SessionID, &rec.VoterID, &rec.Choice,
			&rec.Coordinate.Lat, &rec.Coordinate.Lng, &rec.DistanceMeters, &rec.CastAt,
			&rec.VoterName, &rec.VoterEmail,
		}
		if withSessionTitle {
			dest = append(dest, &rec.SessionTitle)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan ballot record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
