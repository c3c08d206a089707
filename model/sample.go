package model

import "time"

// Heading factor values. The sign says whether the ground track is
// currently moving toward increasing or decreasing latitude; it flips
// the corrected inclination downstream.
const (
	HeadingAscending  = 1.0
	HeadingDescending = -1.0
)

// GeodeticSample is the per-tick position input: the body's sub-point
// on the globe plus the heading factor. Samples are built and discarded
// every tick; nothing retains them across frames.
type GeodeticSample struct {
	LatitudeDeg   float64
	LongitudeDeg  float64
	HeadingFactor float64 // HeadingAscending or HeadingDescending
	AltitudeKm    float64
	Time          time.Time
}
