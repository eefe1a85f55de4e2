// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jihoonp/venuevote/cliparse"
	"github.com/jihoonp/venuevote/geo"
	"github.com/jihoonp/venuevote/middleware"
	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/voting"
)

type LocationHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewLocationHandler(svc *voting.Service, cfg cliparse.Config) *LocationHandler {
	return &LocationHandler{svc: svc, cfg: cfg}
}

// Get handles GET /location
// Public: voters need to know where to be.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	loc, err := h.svc.Fence().Current()
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LocationResponse{Location: loc})
}

// Set handles POST /location
func (h *LocationHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.SetLocationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Lat == nil || req.Lng == nil || req.Radius == nil || req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lat, lng, name, and radius are all required")
		return
	}

	loc, err := h.svc.Fence().Configure(geo.Coordinate{Lat: *req.Lat, Lng: *req.Lng}, req.Name, *req.Radius)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	slog.Info("venue location configured",
		"name", loc.Name,
		"lat", loc.Coordinate.Lat,
		"lng", loc.Coordinate.Lng,
		"radius_m", loc.RadiusMeters,
	)

	middleware.JSONResponse(w, http.StatusOK, models.LocationResponse{Location: &loc})
}
