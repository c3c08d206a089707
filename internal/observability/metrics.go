package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RingCollector bundles Prometheus metrics for the orientation engine
// and provides a ready-to-use /metrics handler.
type RingCollector struct {
	gatherer prometheus.Gatherer

	Frames        *prometheus.CounterVec
	FrameDuration *prometheus.HistogramVec

	CorrectedInclination *prometheus.GaugeVec
	VisibilityDiameter   *prometheus.GaugeVec
	TrackedBodies        prometheus.Gauge
}

// NewRingCollector registers the engine's Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewRingCollector(reg prometheus.Registerer) (*RingCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frames := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ring_frames_total",
		Help: "Total number of ring orientation recomputations, labeled by body.",
	}, []string{"body"})
	frames, err := registerCounterVec(reg, frames, "ring_frames_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ring_frame_duration_seconds",
		Help:    "Per-body orientation recomputation latency in seconds.",
		Buckets: []float64{0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.005},
	}, []string{"body"})
	durations, err = registerHistogramVec(reg, durations, "ring_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	inclination := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ring_corrected_inclination_radians",
		Help: "Latest corrected inclination (heading factor applied) per body.",
	}, []string{"body"})
	inclination, err = registerGaugeVec(reg, inclination, "ring_corrected_inclination_radians")
	if err != nil {
		return nil, err
	}

	visibility := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ring_visibility_diameter_km",
		Help: "Latest visibility circle diameter per body (0 when infeasible).",
	}, []string{"body"})
	visibility, err = registerGaugeVec(reg, visibility, "ring_visibility_diameter_km")
	if err != nil {
		return nil, err
	}

	tracked, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ring_tracked_bodies",
		Help: "Current number of bodies tracked by the orientation engine.",
	}), "ring_tracked_bodies")
	if err != nil {
		return nil, err
	}

	return &RingCollector{
		gatherer:             gatherer,
		Frames:               frames,
		FrameDuration:        durations,
		CorrectedInclination: inclination,
		VisibilityDiameter:   visibility,
		TrackedBodies:        tracked,
	}, nil
}

// ObserveFrame records one per-body recomputation. Satisfies the
// engine's FrameRecorder interface.
func (c *RingCollector) ObserveFrame(body string, d time.Duration) {
	if c == nil {
		return
	}
	if c.Frames != nil {
		c.Frames.WithLabelValues(body).Inc()
	}
	if c.FrameDuration != nil {
		c.FrameDuration.WithLabelValues(body).Observe(d.Seconds())
	}
}

// RecordOrientation publishes the latest per-body outputs.
func (c *RingCollector) RecordOrientation(body string, correctedInclinationRad, visibilityDiameterKm float64) {
	if c == nil {
		return
	}
	if c.CorrectedInclination != nil {
		c.CorrectedInclination.WithLabelValues(body).Set(correctedInclinationRad)
	}
	if c.VisibilityDiameter != nil {
		c.VisibilityDiameter.WithLabelValues(body).Set(visibilityDiameterKm)
	}
}

// SetTrackedBodies updates the tracked-bodies gauge.
func (c *RingCollector) SetTrackedBodies(n int) {
	if c == nil || c.TrackedBodies == nil {
		return
	}
	c.TrackedBodies.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *RingCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
