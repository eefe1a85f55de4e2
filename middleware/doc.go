// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

  - WithLogging: request start/completion logging via slog
  - CORS: cross-origin headers and preflight handling
  - JSONResponse / ErrorResponse: JSON writing helpers
  - ParseJSONBody: strict JSON decoding (unknown fields rejected)
  - GetClientIP: X-Forwarded-For / X-Real-IP / RemoteAddr
  - RequireVoter: Bearer JWT validation, voter identity on the context
  - RequireAdmin: X-Admin-Token validation

Voter routes read the attached identity with VoterFrom(r).
*/
package middleware
