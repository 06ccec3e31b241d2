package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// storm monitoring scanner.
type Metrics struct {
	ScansTotal          *prometheus.CounterVec // labels: outcome={success,fetch_error,persist_error}
	SamplesClassified   prometheus.Counter
	StormEventsDetected prometheus.Counter
	EventsPersisted     prometheus.Counter
	PersistErrors       prometheus.Counter
	EventsPublished     prometheus.Counter
	PublishErrors       prometheus.Counter

	SweepDuration  prometheus.Histogram
	FetchDuration  *prometheus.HistogramVec // labels: endpoint={weather,forecast}
	ScannerRunning prometheus.Gauge
}

// NewMetrics creates and registers all scanner metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ScansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "scans_total",
			Help:      "Location scans by outcome.",
		}, []string{"outcome"}),
		SamplesClassified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "samples_classified_total",
			Help:      "Total forecast samples run through the classifier.",
		}),
		StormEventsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "storm_events_detected_total",
			Help:      "Total storm events derived from closed storm periods.",
		}),
		EventsPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "events_persisted_total",
			Help:      "Total storm events written to the event store.",
		}),
		PersistErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "persist_errors_total",
			Help:      "Total event store write failures.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "events_published_total",
			Help:      "Total storm events published to the downstream topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_monitor",
			Name:      "publish_errors_total",
			Help:      "Total downstream publish failures.",
		}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_monitor",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a full roster sweep across all locations.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storm_monitor",
			Name:      "fetch_duration_seconds",
			Help:      "Weather provider request duration by endpoint.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		ScannerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_monitor",
			Name:      "scanner_running",
			Help:      "1 when the scan loop is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.ScansTotal,
		m.SamplesClassified,
		m.StormEventsDetected,
		m.EventsPersisted,
		m.PersistErrors,
		m.EventsPublished,
		m.PublishErrors,
		m.SweepDuration,
		m.FetchDuration,
		m.ScannerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ScansTotal:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "scans_total"}, []string{"outcome"}),
		SamplesClassified:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "samples_classified_total"}),
		StormEventsDetected: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "storm_events_detected_total"}),
		EventsPersisted:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "events_persisted_total"}),
		PersistErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "persist_errors_total"}),
		EventsPublished:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "events_published_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_monitor", Name: "publish_errors_total"}),
		SweepDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "storm_monitor", Name: "sweep_duration_seconds"}),
		FetchDuration:       prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "storm_monitor", Name: "fetch_duration_seconds"}, []string{"endpoint"}),
		ScannerRunning:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "storm_monitor", Name: "scanner_running"}),
	}
}
