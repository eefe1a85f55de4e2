// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires handlers to routes using Go 1.22+ method
// patterns. Admin routes are wrapped with RequireAdmin, voter routes
// with RequireVoter, and everything with request logging.
package router
