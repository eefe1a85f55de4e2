// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cliparse parses server configuration from CLI flags with
// environment-variable fallback. DATABASE_URL, ADMIN_PASSWORD,
// ADMIN_TOKEN_SALT, and JWT_SECRET are required; PORT defaults to 5000
// and DATABASE_TYPE to postgres.
package cliparse
