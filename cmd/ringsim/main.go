package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MDStebel/OrbitMath/core"
	"github.com/MDStebel/OrbitMath/internal/logging"
	"github.com/MDStebel/OrbitMath/internal/observability"
	"github.com/MDStebel/OrbitMath/kb"
	"github.com/MDStebel/OrbitMath/model"
	"github.com/MDStebel/OrbitMath/timectrl"
)

func main() {
	duration := flag.Duration("duration", 60*time.Second, "total run duration")
	tick := flag.Duration("tick", 1*time.Second, "tick interval between orientation updates")
	accelerated := flag.Bool("accelerated", false, "run in accelerated mode (vs real-time)")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	bodiesPath := flag.String("bodies", "", "optional JSON body catalog overriding the built-in profiles")
	bodyList := flag.String(
		"track",
		"iss,tiangong,hubble",
		"comma-separated list of bodies to track when no catalog file is given",
	)

	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewRingCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}
	metricsSrv := serveMetrics(*metricsAddr, collector, log)

	profiles, err := resolveProfiles(*bodiesPath, *bodyList)
	if err != nil {
		log.Error(ctx, "failed to resolve body profiles", logging.String("error", err.Error()))
		os.Exit(1)
	}

	catalog := kb.NewRingCatalog()
	engine := core.NewOrientationEngine(
		catalog,
		core.WithFrameRecorder(collector),
		core.WithLogger(log),
	)

	for _, p := range profiles {
		if err := catalog.AddBody(p); err != nil {
			log.Error(ctx, "failed to register body", logging.String("body", p.Body.String()), logging.String("error", err.Error()))
			os.Exit(1)
		}
		if err := engine.Track(p); err != nil {
			log.Error(ctx, "failed to track body", logging.String("body", p.Body.String()), logging.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info(ctx, "tracking body",
			logging.String("body", p.Body.String()),
			logging.Float64("inclination_rad", p.InclinationRadians),
			logging.Int("bands", len(p.CorrectionPowers)),
		)
	}

	// The stand-in for the renderer: log every published orientation the
	// way a scene owner would apply it to its ring node.
	catalog.Subscribe(func(ev kb.Event) {
		s := ev.State
		log.Info(ctx, "ring orientation",
			logging.String("body", s.Body.String()),
			logging.Float64("lat_deg", s.Sample.LatitudeDeg),
			logging.Float64("lon_deg", s.Sample.LongitudeDeg),
			logging.Float64("heading", s.Sample.HeadingFactor),
			logging.Float64("corrected_inclination_rad", s.CorrectedInclinationRad),
			logging.Float64("visibility_km", s.VisibilityDiameterKm),
		)
	})

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	start := time.Now().UTC()
	tc := timectrl.NewTimeController(start, *tick, mode)

	tc.AddListener(func(simTime time.Time) {
		if err := engine.Step(ctx, simTime); err != nil {
			log.Warn(ctx, "step completed with errors", logging.String("error", err.Error()))
		}
	})

	log.Info(ctx, "starting ring orientation loop",
		logging.Any("duration", *duration),
		logging.Any("tick", *tick),
		logging.Int("bodies", len(profiles)),
	)
	done := tc.Start(*duration)
	<-done
	log.Info(ctx, "run complete")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}

// resolveProfiles loads the JSON catalog when a path is given, otherwise
// builds profiles from the built-in table for the requested body names.
func resolveProfiles(path, bodyList string) ([]model.OrbitingBodyProfile, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return core.LoadBodyProfiles(f)
	}

	var profiles []model.OrbitingBodyProfile
	for _, name := range strings.Split(bodyList, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		body, err := model.ParseBody(name)
		if err != nil {
			return nil, err
		}
		p, err := model.ProfileFor(body)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func serveMetrics(addr string, collector *observability.RingCollector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
