// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/voting"
)

// writeVotingError maps core errors to HTTP statuses: 400 for
// validation, 403 for out-of-fence, 404 for missing sessions, 409 for
// conflicts, 500 for anything unexpected.
func writeVotingError(w http.ResponseWriter, err error) {
	var invalidChoice *voting.InvalidChoiceError
	var outsideFence *voting.OutsideFenceError
	var invalidLocation *voting.InvalidLocationError

	switch {
	case errors.Is(err, voting.ErrMissingFields),
		errors.Is(err, voting.ErrMissingLocation),
		errors.Is(err, voting.ErrSessionNotActive),
		errors.Is(err, voting.ErrVenueNotConfigured),
		errors.Is(err, voting.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())

	case errors.As(err, &invalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, invalidChoice.Error())

	case errors.As(err, &invalidLocation):
		middleware.ErrorResponse(w, http.StatusBadRequest, invalidLocation.Error())

	case errors.Is(err, voting.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")

	case errors.As(err, &outsideFence):
		distance := outsideFence.DistanceMeters
		radius := outsideFence.AllowedRadiusMeters
		middleware.JSONResponse(w, http.StatusForbidden, models.ErrorResponse{
			Error: http.StatusText(http.StatusForbidden),
			Message: fmt.Sprintf("You are outside the venue area: %s away, allowed %s",
				humanize.SIWithDigits(distance, 1, "m"),
				humanize.SIWithDigits(radius, 1, "m")),
			DistanceMeters:      &distance,
			AllowedRadiusMeters: &radius,
		})

	case errors.Is(err, voting.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in this session")

	case errors.Is(err, voting.ErrSessionActive):
		middleware.ErrorResponse(w, http.StatusConflict, "Session is still active; end it before deleting")

	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
