// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the venuevote API.

# Handler Types

Each handler is a struct with the voting service and config as
dependencies:

  - AdminHandler: admin password login
  - SessionHandler: session lifecycle (create, end, delete, list, active)
  - LocationHandler: venue location read/configure
  - VoteHandler: vote submission and my-ballot lookup
  - ResultsHandler: tallies and ballot rolls

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(svc, cfg)

# Session Lifecycle

Sessions progress through two states: active → finished

	POST   /sessions           → Create (starts active)
	POST   /sessions/{id}/end  → End (one-way)
	DELETE /sessions/{id}      → Delete (finished only, cascades ballots)

Admin operations require the X-Admin-Token header, obtained from
POST /auth/admin/login.

# Voting Flow

	GET  /sessions/active         → the current session
	GET  /location                → where the venue is
	POST /votes                   → Submit (runs the guard chain)
	GET  /sessions/{id}/my-ballot → MyBallot

Voter operations require a Bearer voter token issued by the identity
layer.

# Error Mapping

Core errors map to statuses in errors.go: 400 validation, 403
out-of-fence (with measured distance), 404 unknown session, 409
duplicate vote or delete-while-active.
*/
package handlers
