// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. Both a PostgreSQL and a sqlite variant of the schema are
provided; they differ only in column types and defaults.

# Tables

  - voting_session: session metadata and lifecycle state
  - candidate: ordered candidate names per session
  - voter: identity records upserted from auth claims
  - ballot: one ballot per voter per session
  - venue_location: the single configured venue row

# Relationships

	voting_session 1──* candidate
	voting_session 1──* ballot
	voter          1──* ballot (by voter_id, not enforced)

Session foreign keys use ON DELETE CASCADE, but session deletion goes
through an explicit transaction so the cascaded ballot count can be
reported.

# Constraints

The correctness-critical constraint is UNIQUE (session_id, voter_id)
on ballot: concurrent submissions from the same voter race on the
insert and exactly one wins. venue_location is pinned to a single row
with CHECK (id = 1).
*/
package db
