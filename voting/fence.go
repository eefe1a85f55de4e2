// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jihoonp/venuevote/geo"
	"github.com/jihoonp/venuevote/models"
)

// VenueFence reads and writes the single configured venue location and
// tests coordinates against it. The location lives in the store, not in
// process memory, so it survives restarts and is shared across
// instances. The configured radius is the enforcement radius.
type VenueFence struct {
	db *sql.DB
}

func NewVenueFence(db *sql.DB) *VenueFence {
	return &VenueFence{db: db}
}

// Configure validates and stores a new venue location, replacing any
// prior one. Full overwrite, not a merge.
func (f *VenueFence) Configure(coord geo.Coordinate, name string, radiusMeters float64) (models.VenueLocation, error) {
	if err := coord.Validate(); err != nil {
		field := "latitude"
		if err == geo.ErrLongitudeOutOfRange {
			field = "longitude"
		}
		return models.VenueLocation{}, &InvalidLocationError{Field: field, Reason: err.Error()}
	}
	if radiusMeters < models.MinRadiusMeters || radiusMeters > models.MaxRadiusMeters {
		return models.VenueLocation{}, &InvalidLocationError{
			Field:  "radius",
			Reason: fmt.Sprintf("must be between %d and %d meters", models.MinRadiusMeters, models.MaxRadiusMeters),
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.VenueLocation{}, &InvalidLocationError{Field: "name", Reason: "must not be empty"}
	}

	loc := models.VenueLocation{
		Coordinate:   coord,
		Name:         name,
		RadiusMeters: radiusMeters,
		ConfiguredAt: time.Now().UTC(),
	}

	_, err := f.db.Exec(`
		INSERT INTO venue_location (id, lat, lng, name, radius_m, configured_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			name = excluded.name,
			radius_m = excluded.radius_m,
			configured_at = excluded.configured_at
	`, loc.Coordinate.Lat, loc.Coordinate.Lng, loc.Name, loc.RadiusMeters, loc.ConfiguredAt)
	if err != nil {
		return models.VenueLocation{}, fmt.Errorf("failed to store venue location: %w", err)
	}

	return loc, nil
}

// Current returns the configured venue location, or nil if none has
// ever been set.
func (f *VenueFence) Current() (*models.VenueLocation, error) {
	var loc models.VenueLocation
	err := f.db.QueryRow(`
		SELECT lat, lng, name, radius_m, configured_at
		FROM venue_location WHERE id = 1
	`).Scan(&loc.Coordinate.Lat, &loc.Coordinate.Lng, &loc.Name, &loc.RadiusMeters, &loc.ConfiguredAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read venue location: %w", err)
	}
	return &loc, nil
}

// Check computes the distance from coord to the venue and compares it
// against the configured radius. Returns ErrVenueNotConfigured if no
// venue has been set. The read is a snapshot; a racing admin update
// may land before or after it, either is fine.
func (f *VenueFence) Check(coord geo.Coordinate) (models.FenceCheck, error) {
	loc, err := f.Current()
	if err != nil {
		return models.FenceCheck{}, err
	}
	if loc == nil {
		return models.FenceCheck{}, ErrVenueNotConfigured
	}

	distance := geo.Distance(coord, loc.Coordinate)
	return models.FenceCheck{
		Inside:              distance <= loc.RadiusMeters,
		DistanceMeters:      distance,
		AllowedRadiusMeters: loc.RadiusMeters,
	}, nil
}
