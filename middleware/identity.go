// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jihoonp/venuevote/auth"
	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/models"
)

type contextKey string

const voterKey contextKey = "voter"

// RequireVoter validates the Bearer voter token and attaches the voter
// identity to the request context.
func RequireVoter(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			ErrorResponse(w, http.StatusUnauthorized, "Authorization header must be a Bearer token")
			return
		}

		voter, err := auth.ParseVoterToken(tokenString, cfg.JWTSecret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid voter token")
			return
		}

		next(w, WithVoter(r, voter))
	}
}

// WithVoter returns a request whose context carries the voter identity.
// RequireVoter uses it; tests use it to inject an identity directly.
func WithVoter(r *http.Request, voter models.Voter) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), voterKey, voter))
}

// VoterFrom returns the voter attached by RequireVoter.
func VoterFrom(r *http.Request) (models.Voter, bool) {
	voter, ok := r.Context().Value(voterKey).(models.Voter)
	return voter, ok
}

// RequireAdmin validates the X-Admin-Token header.
func RequireAdmin(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if err := auth.ValidateAdminToken(token, cfg.AdminTokenSalt); err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Admin token required")
			return
		}
		next(w, r)
	}
}
