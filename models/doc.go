// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AdminLoginRequest: password
  - CreateSessionRequest: title, candidates
  - SubmitVoteRequest: session_id, choice, user_lat, user_lng
  - SetLocationRequest: lat, lng, name, radius

SubmitVoteRequest and SetLocationRequest use pointer fields so handlers
can tell an omitted field from a zero value.

# Response Types

  - AdminLoginResponse: admin_token
  - SubmitVoteResponse: ballot_id, choice, candidate_name, distances
  - LocationResponse: location (null when unconfigured)
  - DeleteSessionResponse: deleted_session, deleted_ballot_count
  - SessionResultsResponse: session, tally, ballots
  - ErrorResponse: error, message, optional distance fields

# Domain Types

  - VotingSession: session metadata, candidates, lifecycle state
  - VenueLocation: configured venue coordinate, name, allowed radius
  - Voter: identity attached by the auth layer
  - Ballot / BallotRecord: one vote and its admin-view join
  - TallyEntry: per-candidate count
  - FenceCheck, DeletionReport, SubmissionReceipt

# Constants

Session status values:

	StatusActive   = "active"
	StatusFinished = "finished"

Venue radius bounds (meters):

	MinRadiusMeters = 5
	MaxRadiusMeters = 100
*/
package models
