package core

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MDStebel/OrbitMath/internal/logging"
	"github.com/MDStebel/OrbitMath/model"
)

// RingState is the per-body output of one engine step: the sub-point
// sample that drove it, the corrected inclination, the composite ring
// orientation, and the visibility circle diameter. Each step rebuilds
// the state from scratch; the orientation replaces whatever the ring
// node carried before.
type RingState struct {
	Body                    model.Body
	Sample                  model.GeodeticSample
	CorrectedInclinationRad float64
	Orientation             Mat4
	VisibilityDiameterKm    float64
	UpdatedAt               time.Time
}

// OrientationSink receives the ring state computed on every step.
type OrientationSink interface {
	UpdateOrientation(state RingState) error
}

// FrameRecorder receives per-body frame observations. Implemented by
// the observability collector; the engine itself stays metrics-free.
type FrameRecorder interface {
	ObserveFrame(body string, d time.Duration)
	RecordOrientation(body string, correctedInclinationRad, visibilityDiameterKm float64)
	SetTrackedBodies(n int)
}

type trackedEntry struct {
	profile model.OrbitingBodyProfile
	model   SubpointModel
}

// OrientationEngine recomputes the ring orientation for every tracked
// body once per tick. It owns no scene state: results flow out through
// the sink and the recorder.
type OrientationEngine struct {
	sink     OrientationSink
	recorder FrameRecorder
	log      logging.Logger
	tracer   trace.Tracer

	entries []trackedEntry
}

// EngineOption customises an OrientationEngine.
type EngineOption func(*OrientationEngine)

// WithFrameRecorder attaches a metrics recorder to the engine.
func WithFrameRecorder(r FrameRecorder) EngineOption {
	return func(e *OrientationEngine) { e.recorder = r }
}

// WithLogger attaches a logger to the engine.
func WithLogger(log logging.Logger) EngineOption {
	return func(e *OrientationEngine) { e.log = log }
}

// NewOrientationEngine constructs an engine that publishes ring states
// to the given sink.
func NewOrientationEngine(sink OrientationSink, opts ...EngineOption) *OrientationEngine {
	e := &OrientationEngine{
		sink:   sink,
		log:    logging.Noop(),
		tracer: otel.Tracer("github.com/MDStebel/OrbitMath/core"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Track registers a body using the sub-point model implied by its
// profile (SGP4 when TLE lines are present). The profile is validated
// here, at the construction boundary; Step never re-validates.
func (e *OrientationEngine) Track(p model.OrbitingBodyProfile) error {
	return e.TrackWithModel(p, NewSubpointModel(p))
}

// TrackWithModel registers a body with an explicit sub-point model.
func (e *OrientationEngine) TrackWithModel(p model.OrbitingBodyProfile, m SubpointModel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.entries = append(e.entries, trackedEntry{profile: p, model: m})
	if e.recorder != nil {
		e.recorder.SetTrackedBodies(len(e.entries))
	}
	return nil
}

// Bodies returns the tracked bodies in registration order.
func (e *OrientationEngine) Bodies() []model.Body {
	res := make([]model.Body, 0, len(e.entries))
	for _, entry := range e.entries {
		res = append(res, entry.profile.Body)
	}
	return res
}

// Step recomputes every tracked body's ring state for simTime. A
// failing sub-point model skips that body for this tick; the remaining
// bodies are still updated and the first failure is returned.
func (e *OrientationEngine) Step(ctx context.Context, simTime time.Time) error {
	ctx, span := e.tracer.Start(ctx, "orientation.step",
		trace.WithAttributes(attribute.Int("bodies", len(e.entries))))
	defer span.End()

	var firstErr error
	for i := range e.entries {
		entry := &e.entries[i]
		body := entry.profile.Body
		start := time.Now()

		sample, err := entry.model.Subpoint(simTime)
		if err != nil {
			e.log.Warn(ctx, "sub-point update failed",
				logging.String("body", body.String()),
				logging.String("error", err.Error()),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		corrected := OrientedInclination(entry.profile, sample)
		orientation := Composite(
			corrected,
			LongitudeOffsetRad(sample.LongitudeDeg),
			LatitudeOffsetRad(sample.LatitudeDeg),
		)
		visibility := VisibilityDiameterKm(sample.AltitudeKm, entry.profile.MinElevationDeg)

		state := RingState{
			Body:                    body,
			Sample:                  sample,
			CorrectedInclinationRad: corrected,
			Orientation:             orientation,
			VisibilityDiameterKm:    visibility,
			UpdatedAt:               simTime,
		}

		if e.sink != nil {
			if err := e.sink.UpdateOrientation(state); err != nil {
				e.log.Warn(ctx, "orientation publish failed",
					logging.String("body", body.String()),
					logging.String("error", err.Error()),
				)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
		}

		if e.recorder != nil {
			e.recorder.ObserveFrame(body.String(), time.Since(start))
			e.recorder.RecordOrientation(body.String(), corrected, visibility)
		}
	}
	return firstErr
}
