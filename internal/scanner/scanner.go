// Package scanner orchestrates storm detection per monitored location:
// fetch forecast samples, classify, segment into storm periods, forecast
// impact, persist the resulting events, and feed them downstream.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/treehub/storm-monitor/internal/domain"
	"github.com/treehub/storm-monitor/internal/observability"
)

// SampleSource fetches weather samples for a coordinate.
type SampleSource interface {
	Current(ctx context.Context, loc domain.Location) (domain.WeatherSample, error)
	Forecast(ctx context.Context, loc domain.Location, points int) ([]domain.WeatherSample, error)
}

// EventStore persists finalized storm events and conditions snapshots. It
// owns the records once written; the scanner never updates them.
type EventStore interface {
	SaveStormEvent(ctx context.Context, event domain.StormEvent) error
	SaveConditions(ctx context.Context, snap domain.ConditionsSnapshot) error
}

// EventPublisher feeds persisted storm events to the downstream
// agent/notification layer. Best-effort: publish failures never fail a scan.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.StormEvent) error
}

// LocationResult is the outcome of one location's scan within a sweep.
type LocationResult struct {
	Location domain.Location
	Events   []domain.StormEvent
	Err      error
}

// SweepStatus summarizes the most recent completed sweep. The readiness
// endpoint surfaces it so probes can tell a stalled scanner from a calm one.
type SweepStatus struct {
	CompletedAt     time.Time
	Locations       int
	StormEvents     int
	FailedLocations int
}

// Scanner runs storm detection over the monitored location roster. Locations
// share no mutable state, so a sweep fans out one goroutine per location.
type Scanner struct {
	source    SampleSource
	store     EventStore
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics

	locations      []domain.Location
	forecastPoints int

	mu        sync.Mutex
	lastSweep SweepStatus
	swept     bool
}

// New creates a Scanner. publisher may be nil to disable the downstream feed.
func New(source SampleSource, store EventStore, publisher EventPublisher, locations []domain.Location, forecastPoints int, logger *slog.Logger, metrics *observability.Metrics) *Scanner {
	return &Scanner{
		source:         source,
		store:          store,
		publisher:      publisher,
		locations:      locations,
		forecastPoints: forecastPoints,
		logger:         logger,
		metrics:        metrics,
	}
}

// CheckReadiness returns nil once at least one full sweep has completed.
func (s *Scanner) CheckReadiness(_ context.Context) error {
	if _, ok := s.LastSweep(); !ok {
		return errors.New("scanner has not completed a sweep yet")
	}
	return nil
}

// LastSweep returns the most recent sweep's summary. ok is false until the
// first sweep completes.
func (s *Scanner) LastSweep() (status SweepStatus, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSweep, s.swept
}

// Run sweeps the roster immediately and then on every interval tick until
// the context is cancelled.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) error {
	s.logger.Info("scanner started", "locations", len(s.locations), "interval", interval)
	s.metrics.ScannerRunning.Set(1)
	defer s.metrics.ScannerRunning.Set(0)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.Sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("scanner stopping", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}

// Sweep scans every monitored location concurrently and returns per-location
// results in roster order. One location's failure never affects siblings.
func (s *Scanner) Sweep(ctx context.Context) []LocationResult {
	start := time.Now()
	results := make([]LocationResult, len(s.locations))

	var wg sync.WaitGroup
	for i, loc := range s.locations {
		wg.Add(1)
		go func(i int, loc domain.Location) {
			defer wg.Done()
			events, err := s.ScanLocation(ctx, loc)
			results[i] = LocationResult{Location: loc, Events: events, Err: err}
		}(i, loc)
	}
	wg.Wait()

	detected, failed := 0, 0
	for _, r := range results {
		detected += len(r.Events)
		if r.Err != nil {
			failed++
		}
	}

	s.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	s.mu.Lock()
	s.lastSweep = SweepStatus{
		CompletedAt:     time.Now().UTC(),
		Locations:       len(results),
		StormEvents:     detected,
		FailedLocations: failed,
	}
	s.swept = true
	s.mu.Unlock()
	s.logger.Info("sweep complete", "locations", len(results), "storm_events", detected, "failed_locations", failed, "duration", time.Since(start))
	return results
}

// ScanLocation runs the full detection pipeline for one location:
// fetch → classify → segment → forecast impact → persist → publish.
//
// A provider failure returns (nil, err) with nothing written; the absence of
// events is then indistinguishable from calm weather, which is accepted. On a
// persistence failure the computed events are returned alongside the error so
// the caller can decide retry policy.
func (s *Scanner) ScanLocation(ctx context.Context, loc domain.Location) ([]domain.StormEvent, error) {
	samples, err := s.source.Forecast(ctx, loc, s.forecastPoints)
	if err != nil {
		s.metrics.ScansTotal.WithLabelValues("fetch_error").Inc()
		s.logger.Warn("forecast fetch failed, skipping location",
			"city", loc.City, "state", loc.State, "error", err)
		return nil, fmt.Errorf("fetch forecast for %s: %w", loc.City, err)
	}

	classified := make([]domain.ClassifiedSample, len(samples))
	for i, sample := range samples {
		classified[i] = domain.Classify(sample)
	}
	s.metrics.SamplesClassified.Add(float64(len(classified)))

	// The provider returns points in chronological order, but the segmenter's
	// correctness depends on it, so enforce rather than trust.
	sort.SliceStable(classified, func(i, j int) bool {
		return classified[i].ObservedAt.Before(classified[j].ObservedAt)
	})

	events := s.buildEvents(loc, domain.Segment(classified))

	for _, event := range events {
		if err := s.store.SaveStormEvent(ctx, event); err != nil {
			s.metrics.ScansTotal.WithLabelValues("persist_error").Inc()
			s.metrics.PersistErrors.Inc()
			return events, fmt.Errorf("persist storm event %s: %w", event.ID, err)
		}
		s.metrics.EventsPersisted.Inc()
		s.publish(ctx, event)
	}

	s.metrics.ScansTotal.WithLabelValues("success").Inc()
	return events, nil
}

// ObserveCurrentConditions fetches, classifies, and persists a single
// current-weather snapshot for dashboard display. It reuses the classifier
// but never segments. Returns nil without error when the provider is
// unavailable; a location's dashboard simply shows stale data.
func (s *Scanner) ObserveCurrentConditions(ctx context.Context, loc domain.Location) (*domain.ClassifiedSample, error) {
	sample, err := s.source.Current(ctx, loc)
	if err != nil {
		s.logger.Warn("current conditions fetch failed",
			"city", loc.City, "state", loc.State, "error", err)
		return nil, nil
	}

	classified := domain.Classify(sample)
	s.metrics.SamplesClassified.Inc()

	if err := s.store.SaveConditions(ctx, domain.SnapshotConditions(classified)); err != nil {
		s.metrics.PersistErrors.Inc()
		return &classified, fmt.Errorf("persist conditions for %s: %w", loc.City, err)
	}
	return &classified, nil
}

func (s *Scanner) buildEvents(loc domain.Location, periods []domain.StormPeriod) []domain.StormEvent {
	events := make([]domain.StormEvent, 0, len(periods))
	for _, period := range periods {
		event := domain.BuildStormEvent(loc, period, domain.ForecastImpact(period))
		s.metrics.StormEventsDetected.Inc()
		s.logger.Info("storm event detected",
			"city", loc.City, "state", loc.State,
			"type", event.EventType, "severity", event.Severity,
			"max_wind_mph", event.MaxWindSpeedMph,
			"service_demand", event.PredictedServiceDemand,
		)
		events = append(events, event)
	}
	return events
}

func (s *Scanner) publish(ctx context.Context, event domain.StormEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("publish storm event failed", "event_id", event.ID, "error", err)
		return
	}
	s.metrics.EventsPublished.Inc()
}
