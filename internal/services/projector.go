package services

import (
	"math"

	"setback-area-service/internal/domain"
)

// Mean earth radius in meters (IUGG).
const earthRadiusM = 6371008.8

// Projector converts geographic coordinates to a locally-Euclidean planar
// frame in meters, and back. All offset and intersection math runs in that
// frame, where distances are valid at site scale.
type Projector interface {
	Forward(c domain.Coordinates) domain.Point
	Inverse(p domain.Point) domain.Coordinates
}

// AzimuthalProjector is a spherical azimuthal-equidistant projection
// anchored at the site centroid. Distances from the anchor are exact;
// distortion elsewhere is negligible at sub-kilometer extents.
type AzimuthalProjector struct {
	lon0 float64 // radians
	lat0 float64 // radians
}

// NewAzimuthalProjector anchors a projection at the given point.
// Fails with a degenerate-polygon error when the anchor is outside valid
// lat/lon ranges, which happens only when the input ring was itself junk.
func NewAzimuthalProjector(anchor domain.Coordinates) (*AzimuthalProjector, error) {
	if !anchor.Valid() {
		return nil, domain.NewGeometryError(domain.ErrDegeneratePolygon,
			"projection anchor out of range: lon=%v lat=%v", anchor.Lon, anchor.Lat)
	}
	return &AzimuthalProjector{
		lon0: anchor.Lon * math.Pi / 180,
		lat0: anchor.Lat * math.Pi / 180,
	}, nil
}

func (a *AzimuthalProjector) Forward(c domain.Coordinates) domain.Point {
	lon := c.Lon * math.Pi / 180
	lat := c.Lat * math.Pi / 180
	dlon := lon - a.lon0

	cosC := math.Sin(a.lat0)*math.Sin(lat) + math.Cos(a.lat0)*math.Cos(lat)*math.Cos(dlon)
	cosC = math.Max(-1, math.Min(1, cosC))
	c0 := math.Acos(cosC)

	// k -> 1 as the angular distance approaches zero.
	k := 1.0
	if c0 > 1e-12 {
		k = c0 / math.Sin(c0)
	}

	return domain.Point{
		X: earthRadiusM * k * math.Cos(lat) * math.Sin(dlon),
		Y: earthRadiusM * k * (math.Cos(a.lat0)*math.Sin(lat) - math.Sin(a.lat0)*math.Cos(lat)*math.Cos(dlon)),
	}
}

func (a *AzimuthalProjector) Inverse(p domain.Point) domain.Coordinates {
	rho := math.Hypot(p.X, p.Y)
	if rho < 1e-9 {
		return domain.Coordinates{Lon: a.lon0 * 180 / math.Pi, Lat: a.lat0 * 180 / math.Pi}
	}
	c := rho / earthRadiusM

	sinC, cosC := math.Sin(c), math.Cos(c)
	lat := math.Asin(cosC*math.Sin(a.lat0) + p.Y*sinC*math.Cos(a.lat0)/rho)
	lon := a.lon0 + math.Atan2(p.X*sinC, rho*math.Cos(a.lat0)*cosC-p.Y*math.Sin(a.lat0)*sinC)

	return domain.Coordinates{Lon: lon * 180 / math.Pi, Lat: lat * 180 / math.Pi}
}

// PlanarProjector is the degraded equirectangular approximation:
//
//	x = (lon-lon0) * 111320 * cos(lat0)
//	y = (lat-lat0) * 111320
//
// Error grows with distance from the anchor; acceptable only at single-lot
// scale (< ~1 km). Kept as the documented fallback frame when the full
// projection cannot be anchored.
type PlanarProjector struct {
	lon0   float64
	lat0   float64
	xScale float64
}

const metersPerDegree = 111320.0

func NewPlanarProjector(anchor domain.Coordinates) *PlanarProjector {
	return &PlanarProjector{
		lon0:   anchor.Lon,
		lat0:   anchor.Lat,
		xScale: metersPerDegree * math.Cos(anchor.Lat*math.Pi/180),
	}
}

func (p *PlanarProjector) Forward(c domain.Coordinates) domain.Point {
	return domain.Point{
		X: (c.Lon - p.lon0) * p.xScale,
		Y: (c.Lat - p.lat0) * metersPerDegree,
	}
}

func (p *PlanarProjector) Inverse(pt domain.Point) domain.Coordinates {
	lon := p.lon0
	if p.xScale != 0 {
		lon += pt.X / p.xScale
	}
	return domain.Coordinates{Lon: lon, Lat: p.lat0 + pt.Y/metersPerDegree}
}

// anchorFor returns the vertex mean of a geographic ring, used as the
// projection anchor. The exact centroid is not needed here: any interior
// point keeps the local frame accurate at site scale.
func anchorFor(coords []domain.Coordinates) domain.Coordinates {
	var lon, lat float64
	for _, c := range coords {
		lon += c.Lon
		lat += c.Lat
	}
	n := float64(len(coords))
	return domain.Coordinates{Lon: lon / n, Lat: lat / n}
}
