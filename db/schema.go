// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// driver is "postgres" or "sqlite".
func CreateSchema(db *sql.DB, driver string) error {
	schema := postgresSchema
	if driver == "sqlite" {
		schema = sqliteSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Voting sessions
CREATE TABLE IF NOT EXISTS voting_session (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'finished')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    finished_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voting_session_status ON voting_session(status);
CREATE INDEX IF NOT EXISTS idx_voting_session_created ON voting_session(created_at);

-- Candidates, ordered by position (1-based, matches ballot choice)
CREATE TABLE IF NOT EXISTS candidate (
    session_id TEXT NOT NULL REFERENCES voting_session(id) ON DELETE CASCADE,
    position INTEGER NOT NULL CHECK (position >= 1),
    name TEXT NOT NULL,
    PRIMARY KEY (session_id, position)
);

-- Voters, upserted from identity-provider claims
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    first_seen_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Ballots: UNIQUE (session_id, voter_id) is the one-vote guarantee
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES voting_session(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    choice INTEGER NOT NULL CHECK (choice >= 1),
    lat DOUBLE PRECISION NOT NULL,
    lng DOUBLE PRECISION NOT NULL,
    distance_m DOUBLE PRECISION NOT NULL,
    cast_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (session_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_session_id ON ballot(session_id);

-- Venue location: single row, full overwrite on configure
CREATE TABLE IF NOT EXISTS venue_location (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    lat DOUBLE PRECISION NOT NULL,
    lng DOUBLE PRECISION NOT NULL,
    name TEXT NOT NULL,
    radius_m DOUBLE PRECISION NOT NULL CHECK (radius_m >= 5 AND radius_m <= 100),
    configured_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Same shape for sqlite. No NOW(); timestamps are always written
// explicitly by the application anyway.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS voting_session (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'finished')),
    created_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voting_session_status ON voting_session(status);
CREATE INDEX IF NOT EXISTS idx_voting_session_created ON voting_session(created_at);

CREATE TABLE IF NOT EXISTS candidate (
    session_id TEXT NOT NULL REFERENCES voting_session(id) ON DELETE CASCADE,
    position INTEGER NOT NULL CHECK (position >= 1),
    name TEXT NOT NULL,
    PRIMARY KEY (session_id, position)
);

CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    first_seen_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES voting_session(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    choice INTEGER NOT NULL CHECK (choice >= 1),
    lat REAL NOT NULL,
    lng REAL NOT NULL,
    distance_m REAL NOT NULL,
    cast_at TIMESTAMP NOT NULL,
    UNIQUE (session_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_session_id ON ballot(session_id);

CREATE TABLE IF NOT EXISTS venue_location (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    lat REAL NOT NULL,
    lng REAL NOT NULL,
    name TEXT NOT NULL,
    radius_m REAL NOT NULL CHECK (radius_m >= 5 AND radius_m <= 100),
    configured_at TIMESTAMP NOT NULL
);
`
