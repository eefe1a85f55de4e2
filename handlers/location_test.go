// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/jihoonp/venuevote/models"
	"github.com/jihoonp/venuevote/testutil"
	"github.com/jihoonp/venuevote/voting"
)

func TestGetLocationUnconfigured(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewLocationHandler(voting.NewService(conn), cfg)

	req := testutil.MakeRequest("GET", "/location", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.LocationResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Location != nil {
		t.Errorf("Expected null location before configuration, got %+v", resp.Location)
	}
}

func TestSetLocation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewLocationHandler(voting.NewService(conn), cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid configuration",
			requestBody: models.SetLocationRequest{
				Lat: float64ptr(37.5665), Lng: float64ptr(126.9780),
				Name: "City Hall", Radius: float64ptr(25),
			},
			expectedStatus: 200,
		},
		{
			name: "latitude out of range",
			requestBody: models.SetLocationRequest{
				Lat: float64ptr(95), Lng: float64ptr(126.9780),
				Name: "City Hall", Radius: float64ptr(25),
			},
			expectedStatus: 400,
		},
		{
			name: "longitude out of range",
			requestBody: models.SetLocationRequest{
				Lat: float64ptr(37.5), Lng: float64ptr(-181),
				Name: "City Hall", Radius: float64ptr(25),
			},
			expectedStatus: 400,
		},
		{
			name: "radius below minimum",
			requestBody: models.SetLocationRequest{
				Lat: float64ptr(37.5), Lng: float64ptr(126.9),
				Name: "City Hall", Radius: float64ptr(2),
			},
			expectedStatus: 400,
		},
		{
			name: "radius above maximum",
			requestBody: models.SetLocationRequest{
				Lat: float64ptr(37.5), Lng: float64ptr(126.9),
				Name: "City Hall", Radius: float64ptr(500),
			},
			expectedStatus: 400,
		},
		{
			name: "missing name",
			requestBody: models.SetLocationRequest{
				Lat: float64ptr(37.5), Lng: float64ptr(126.9),
				Radius: float64ptr(25),
			},
			expectedStatus: 400,
		},
		{
			name: "missing coordinates",
			requestBody: models.SetLocationRequest{
				Name: "City Hall", Radius: float64ptr(25),
			},
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/location", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Set(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSetThenGetLocation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewLocationHandler(voting.NewService(conn), cfg)

	body := models.SetLocationRequest{
		Lat: float64ptr(37.0), Lng: float64ptr(127.0),
		Name: "  Gym  ", Radius: float64ptr(10),
	}
	req := testutil.MakeRequest("POST", "/location", body, nil)
	w := httptest.NewRecorder()
	handler.Set(w, req)
	testutil.AssertStatus(t, w, 200)

	req = testutil.MakeRequest("GET", "/location", nil, nil)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.LocationResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Location == nil {
		t.Fatal("Expected configured location")
	}
	if resp.Location.Name != "Gym" {
		t.Errorf("Expected trimmed name Gym, got %q", resp.Location.Name)
	}
	if resp.Location.RadiusMeters != 10 {
		t.Errorf("Expected radius 10, got %f", resp.Location.RadiusMeters)
	}
}
