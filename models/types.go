package models

import (
	"time"

	"github.com/jihoonp/venuevote/geo"
)

// Session status constants
const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

// Venue radius bounds in meters
const (
	MinRadiusMeters = 5
	MaxRadiusMeters = 100
)

// Request types

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type CreateSessionRequest struct {
	Title      string   `json:"title"`
	Candidates []string `json:"candidates"`
}

// Pointer fields distinguish "absent" from zero values so the guard
// chain can report missing fields precisely.
type SubmitVoteRequest struct {
	SessionID string   `json:"session_id"`
	Choice    *int     `json:"choice"`
	UserLat   *float64 `json:"user_lat"`
	UserLng   *float64 `json:"user_lng"`
}

type SetLocationRequest struct {
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Name   string   `json:"name"`
	Radius *float64 `json:"radius"`
}

// Response types

type AdminLoginResponse struct {
	AdminToken string `json:"admin_token"`
}

type SubmitVoteResponse struct {
	Message             string  `json:"message"`
	BallotID            string  `json:"ballot_id"`
	Choice              int     `json:"choice"`
	CandidateName       string  `json:"candidate_name"`
	DistanceMeters      float64 `json:"distance_meters"`
	AllowedRadiusMeters float64 `json:"allowed_radius_meters"`
}

type LocationResponse struct {
	Location *VenueLocation `json:"location"`
}

type DeleteSessionResponse struct {
	Message            string `json:"message"`
	DeletedSession     string `json:"deleted_session"`
	DeletedBallotCount int    `json:"deleted_ballot_count"`
}

type SessionResultsResponse struct {
	Session VotingSession  `json:"session"`
	Tally   []TallyEntry   `json:"tally"`
	Ballots []BallotRecord `json:"ballots"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`

	// Populated for out-of-fence rejections so clients can show
	// how far away the voter was.
	DistanceMeters      *float64 `json:"distance_meters,omitempty"`
	AllowedRadiusMeters *float64 `json:"allowed_radius_meters,omitempty"`
}

// Domain types

type VotingSession struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Candidates []string   `json:"candidates"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type VenueLocation struct {
	Coordinate   geo.Coordinate `json:"coordinate"`
	Name         string         `json:"name"`
	RadiusMeters float64        `json:"radius_meters"`
	ConfiguredAt time.Time      `json:"configured_at"`
}

// Voter is the identity attached to a request by the auth layer.
// The id is an opaque stable key from the external identity provider.
type Voter struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Ballot struct {
	ID             string         `json:"id"`
	SessionID      string         `json:"session_id"`
	VoterID        string         `json:"-"` // Never expose in JSON
	Choice         int            `json:"choice"`
	Coordinate     geo.Coordinate `json:"coordinate"`
	DistanceMeters float64        `json:"distance_meters"`
	CastAt         time.Time      `json:"cast_at"`
}

// BallotRecord is a ballot joined with voter display info for admin views.
type BallotRecord struct {
	Ballot
	VoterName    string `json:"voter_name"`
	VoterEmail   string `json:"voter_email"`
	SessionTitle string `json:"session_title,omitempty"`
}

type TallyEntry struct {
	Choice    int    `json:"choice"`
	Candidate string `json:"candidate"`
	Count     int    `json:"count"`
}

// FenceCheck is the result of testing a coordinate against the venue fence.
type FenceCheck struct {
	Inside              bool    `json:"inside"`
	DistanceMeters      float64 `json:"distance_meters"`
	AllowedRadiusMeters float64 `json:"allowed_radius_meters"`
}

// DeletionReport describes a completed session deletion and its cascade.
type DeletionReport struct {
	Session            VotingSession `json:"session"`
	DeletedBallotCount int           `json:"deleted_ballot_count"`
}

// SubmissionReceipt is returned for an accepted vote.
type SubmissionReceipt struct {
	BallotID            string  `json:"ballot_id"`
	Choice              int     `json:"choice"`
	CandidateName       string  `json:"candidate_name"`
	DistanceMeters      float64 `json:"distance_meters"`
	AllowedRadiusMeters float64 `json:"allowed_radius_meters"`
}
