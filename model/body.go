package model

import (
	"fmt"
	"strings"
)

// Body identifies an orbiting body supported by the engine. The set is
// closed: each value maps to exactly one immutable OrbitingBodyProfile,
// there is no behavioural polymorphism beyond the table lookup.
type Body int

const (
	BodyUnknown Body = iota
	BodyISS
	BodyTiangong
	BodyHubble
)

// String returns the canonical lowercase name used in configuration
// files and metric labels.
func (b Body) String() string {
	switch b {
	case BodyISS:
		return "iss"
	case BodyTiangong:
		return "tiangong"
	case BodyHubble:
		return "hubble"
	default:
		return "unknown"
	}
}

// ParseBody maps a configuration name to a Body. It tolerates case and
// a few common aliases.
func ParseBody(s string) (Body, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iss", "zarya", "25544":
		return BodyISS, nil
	case "tiangong", "css", "48274":
		return BodyTiangong, nil
	case "hubble", "hst", "20580":
		return BodyHubble, nil
	default:
		return BodyUnknown, fmt.Errorf("unknown body %q", s)
	}
}
