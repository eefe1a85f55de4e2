// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geo provides coordinate validation and great-circle distance.

Distance uses the haversine formula:

	h = sin²(Δφ/2) + cos(φ1)·cos(φ2)·sin²(Δλ/2)
	c = 2·atan2(√h, √(1−h))
	d = R·c

with R = 6,371,000 m. Distance is symmetric, returns 0 for identical
points, and grows monotonically with angular separation. For reference,
one degree of latitude is roughly 111.2 km.
*/
package geo
