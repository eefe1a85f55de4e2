// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"math"
	"testing"

	"github.com/jihoonp/venuevote/geo"
	"github.com/jihoonp/venuevote/testutil"
)

func TestVenueFenceConfigure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	fence := NewVenueFence(conn)

	tests := []struct {
		name      string
		coord     geo.Coordinate
		venueName string
		radius    float64
		wantField string // empty means success
	}{
		{"valid", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "Main Hall", 10, ""},
		{"radius lower bound", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "Main Hall", 5, ""},
		{"radius upper bound", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "Main Hall", 100, ""},
		{"name gets trimmed", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "  Main Hall  ", 10, ""},
		{"latitude out of range", geo.Coordinate{Lat: 91, Lng: 127.0}, "Main Hall", 10, "latitude"},
		{"longitude out of range", geo.Coordinate{Lat: 37.0, Lng: 181}, "Main Hall", 10, "longitude"},
		{"radius too small", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "Main Hall", 4.9, "radius"},
		{"radius too large", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "Main Hall", 100.1, "radius"},
		{"empty name", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "", 10, "name"},
		{"whitespace name", geo.Coordinate{Lat: 37.0, Lng: 127.0}, "   ", 10, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := fence.Configure(tt.coord, tt.venueName, tt.radius)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Configure() error = %v", err)
				}
				if loc.Name != "Main Hall" {
					t.Errorf("Configure() name = %q, want trimmed %q", loc.Name, "Main Hall")
				}
				if loc.ConfiguredAt.IsZero() {
					t.Error("Configure() did not set configured_at")
				}
				return
			}

			var invalidLoc *InvalidLocationError
			if !errors.As(err, &invalidLoc) {
				t.Fatalf("Configure() error = %v, want InvalidLocationError", err)
			}
			if invalidLoc.Field != tt.wantField {
				t.Errorf("Configure() rejected field %q, want %q", invalidLoc.Field, tt.wantField)
			}
		})
	}
}

func TestVenueFenceConfigureOverwrites(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	fence := NewVenueFence(conn)

	if _, err := fence.Configure(geo.Coordinate{Lat: 37.0, Lng: 127.0}, "First", 10); err != nil {
		t.Fatalf("first Configure() error = %v", err)
	}
	if _, err := fence.Configure(geo.Coordinate{Lat: 35.1, Lng: 129.0}, "Second", 50); err != nil {
		t.Fatalf("second Configure() error = %v", err)
	}

	loc, err := fence.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if loc == nil {
		t.Fatal("Current() = nil after configuration")
	}
	if loc.Name != "Second" || loc.RadiusMeters != 50 || loc.Coordinate.Lat != 35.1 {
		t.Errorf("Current() = %+v, want the second configuration", loc)
	}
}

func TestVenueFenceCurrentUnconfigured(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	fence := NewVenueFence(conn)

	loc, err := fence.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if loc != nil {
		t.Errorf("Current() = %+v, want nil before configuration", loc)
	}
}

func TestVenueFenceCheck(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	fence := NewVenueFence(conn)

	// Not configured yet
	if _, err := fence.Check(geo.Coordinate{Lat: 37.0, Lng: 127.0}); err != ErrVenueNotConfigured {
		t.Errorf("Check() = %v, want ErrVenueNotConfigured", err)
	}

	testutil.ConfigureTestVenue(t, conn, 37.0, 127.0, 10)

	tests := []struct {
		name         string
		coord        geo.Coordinate
		wantInside   bool
		wantDistance float64
		tolerance    float64
	}{
		{"exactly at venue", geo.Coordinate{Lat: 37.0, Lng: 127.0}, true, 0, 0.001},
		{"just inside", geo.Coordinate{Lat: 37.00005, Lng: 127.0}, true, 5.6, 0.1},
		{"about a kilometer away", geo.Coordinate{Lat: 37.01, Lng: 127.0}, false, 1112, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := fence.Check(tt.coord)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if check.Inside != tt.wantInside {
				t.Errorf("Check() inside = %v, want %v (distance %f)", check.Inside, tt.wantInside, check.DistanceMeters)
			}
			if math.Abs(check.DistanceMeters-tt.wantDistance) > tt.tolerance {
				t.Errorf("Check() distance = %f, want %f ± %f", check.DistanceMeters, tt.wantDistance, tt.tolerance)
			}
			if check.AllowedRadiusMeters != 10 {
				t.Errorf("Check() allowed radius = %f, want configured 10", check.AllowedRadiusMeters)
			}
		})
	}
}

// The configured radius is the enforcement radius: widening it admits
// a coordinate the narrower fence rejected.
func TestVenueFenceUsesConfiguredRadius(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	fence := NewVenueFence(conn)
	nearby := geo.Coordinate{Lat: 37.0004, Lng: 127.0} // ~44m north

	testutil.ConfigureTestVenue(t, conn, 37.0, 127.0, 10)
	check, err := fence.Check(nearby)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if check.Inside {
		t.Errorf("Check() inside with 10m radius at %.1fm, want outside", check.DistanceMeters)
	}

	testutil.ConfigureTestVenue(t, conn, 37.0, 127.0, 100)
	check, err = fence.Check(nearby)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !check.Inside {
		t.Errorf("Check() outside with 100m radius at %.1fm, want inside", check.DistanceMeters)
	}
}
