// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the venuevote API server.

Venuevote is a location-gated voting service: authenticated voters cast
a single vote in an admin-created session, accepted only if their
reported position lies within the configured radius of the venue.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=postgres://... ADMIN_PASSWORD=... ADMIN_TOKEN_SALT=... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string
  - ADMIN_PASSWORD (-admin-password): admin login password
  - ADMIN_TOKEN_SALT (-admin-salt): secret for admin token HMAC
  - JWT_SECRET (-jwt-secret): voter token signing secret

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: the core (sessions, ballots, venue fence, guard chain)
  - geo: coordinate validation and haversine distance
  - handlers: HTTP request handlers (admin, sessions, location, votes, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, JSON helpers
  - models: request/response and domain types
  - auth: admin and voter credential handling
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
