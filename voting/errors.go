// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Guard and store errors. All are request-local; none leaves the
// system in an inconsistent state.
var (
	ErrMissingFields      = errors.New("session id and choice are required")
	ErrMissingLocation    = errors.New("location is required")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionNotActive   = errors.New("session is not active")
	ErrVenueNotConfigured = errors.New("venue location is not configured")
	ErrDuplicateVote      = errors.New("voter has already voted in this session")
	ErrSessionActive      = errors.New("session is still active")
	ErrInvalidInput       = errors.New("invalid input")
)

// InvalidChoiceError reports a choice outside [1, Candidates].
type InvalidChoiceError struct {
	Choice     int
	Candidates int
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("choice %d is out of range: pick a candidate between 1 and %d", e.Choice, e.Candidates)
}

// OutsideFenceError reports a coordinate beyond the allowed radius.
type OutsideFenceError struct {
	DistanceMeters      float64
	AllowedRadiusMeters float64
}

func (e *OutsideFenceError) Error() string {
	return fmt.Sprintf("outside the venue area: %.1fm away, allowed %.1fm", e.DistanceMeters, e.AllowedRadiusMeters)
}

// InvalidLocationError reports which venue-configuration field was bad.
type InvalidLocationError struct {
	Field  string
	Reason string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("invalid location %s: %s", e.Field, e.Reason)
}

// isUniqueViolation reports whether err is a unique-constraint failure
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
