package core

import (
	"fmt"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/MDStebel/OrbitMath/model"
)

// SubpointModel produces the body's current sub-point for a given time.
// It stands in for the external position-tracking subsystem: the engine
// only ever sees the GeodeticSample it returns.
type SubpointModel interface {
	Subpoint(t time.Time) (model.GeodeticSample, error)
}

// FixedSubpointModel always reports the same sub-point. Useful for
// ground-pinned rings and for tests.
type FixedSubpointModel struct {
	Sample model.GeodeticSample
}

// Subpoint returns the fixed sample stamped with the requested time.
func (m *FixedSubpointModel) Subpoint(t time.Time) (model.GeodeticSample, error) {
	s := m.Sample
	if s.HeadingFactor == 0 {
		s.HeadingFactor = model.HeadingAscending
	}
	s.Time = t
	return s, nil
}

// SGP4SubpointModel derives the sub-point from a TLE via SGP4. The
// heading factor comes from the latitude delta against the previous
// tick, so the model keeps one float of state between calls; everything
// the engine consumes is still rebuilt per tick.
type SGP4SubpointModel struct {
	sat     satellite.Satellite
	hasPrev bool
	prevLat float64
}

// NewSGP4SubpointModel constructs a sub-point model from TLE lines.
func NewSGP4SubpointModel(line1, line2 string) *SGP4SubpointModel {
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return &SGP4SubpointModel{sat: sat}
}

// Subpoint propagates the satellite to t and converts the ECI position
// to geodetic latitude/longitude plus altitude.
func (m *SGP4SubpointModel) Subpoint(t time.Time) (model.GeodeticSample, error) {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	pos, _ := satellite.Propagate(m.sat, year, int(month), day, hour, min, sec)
	if pos.X != pos.X || pos.Y != pos.Y || pos.Z != pos.Z {
		return model.GeodeticSample{}, fmt.Errorf("sgp4 propagation produced NaN position at %v", t)
	}

	gmst := satellite.GSTimeFromDate(year, int(month), day, hour, min, sec)
	altitude, _, llRad := satellite.ECIToLLA(pos, gmst)
	ll := satellite.LatLongDeg(llRad)

	heading := model.HeadingAscending
	if m.hasPrev && ll.Latitude < m.prevLat {
		heading = model.HeadingDescending
	}
	m.prevLat = ll.Latitude
	m.hasPrev = true

	return model.GeodeticSample{
		LatitudeDeg:   ll.Latitude,
		LongitudeDeg:  ll.Longitude,
		HeadingFactor: heading,
		AltitudeKm:    altitude,
		Time:          t,
	}, nil
}

// NewSubpointModel chooses a model for the profile: SGP4 when TLE lines
// are present, fixed otherwise.
func NewSubpointModel(p model.OrbitingBodyProfile) SubpointModel {
	if p.TLELine1 != "" && p.TLELine2 != "" {
		return NewSGP4SubpointModel(p.TLELine1, p.TLELine2)
	}
	return &FixedSubpointModel{}
}
