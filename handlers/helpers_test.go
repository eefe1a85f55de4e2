// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
)

// withVoter attaches a voter identity the way RequireVoter would.
func withVoter(r *http.Request, voter models.Voter) *http.Request {
	return middleware.WithVoter(r, voter)
}
