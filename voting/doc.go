// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the core of the system: sessions, ballots, the venue
fence, and the submission guard chain.

# Components

  - SessionStore: session lifecycle (create, end, delete, query)
  - BallotLedger: one ballot per (session, voter), tallies, rolls
  - VenueFence: the configured venue location and the in/out check
  - Service: the ordered guard chain for one vote submission

All four read and write through *sql.DB; the store is the single
source of truth, so the one-vote-per-voter guarantee holds across
processes, not just goroutines.

# Submission Guard Chain

Service.Submit evaluates, in order:

 1. session id and choice present
 2. coordinate present
 3. session exists
 4. session is active
 5. choice within [1, len(candidates)]
 6. venue configured
 7. coordinate inside the fence
 8. voter has not voted (fast path)
 9. insert ballot — the UNIQUE (session_id, voter_id) constraint
    decides any duplicate race; the loser gets ErrDuplicateVote

The first failing guard determines the returned error and no write
happens before step 9.

# Error Kinds

Sentinels (ErrMissingFields, ErrMissingLocation, ErrSessionNotFound,
ErrSessionNotActive, ErrVenueNotConfigured, ErrDuplicateVote,
ErrSessionActive, ErrInvalidInput) plus structured types carrying
measured values: InvalidChoiceError, OutsideFenceError,
InvalidLocationError. Handlers translate these to HTTP statuses.
*/
package voting
