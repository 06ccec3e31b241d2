// Command scan runs a one-shot storm scan of a single coordinate and prints
// the derived events as JSON, without touching the event store or Kafka.
// Useful for checking provider credentials and eyeballing classification.
//
// Usage:
//
//	OWM_API_KEY=... go run ./cmd/scan -lat 32.7767 -lon -96.7970 -city Dallas -state TX
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/treehub/storm-monitor/internal/adapter/openweather"
	"github.com/treehub/storm-monitor/internal/domain"
	"github.com/treehub/storm-monitor/internal/observability"
	"github.com/treehub/storm-monitor/internal/scanner"
)

// stdoutStore implements scanner.EventStore by printing records instead of
// persisting them.
type stdoutStore struct {
	enc *json.Encoder
}

func (s *stdoutStore) SaveStormEvent(_ context.Context, event domain.StormEvent) error {
	return s.enc.Encode(event)
}

func (s *stdoutStore) SaveConditions(_ context.Context, snap domain.ConditionsSnapshot) error {
	return s.enc.Encode(snap)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	lat := flag.Float64("lat", 0, "latitude of the location to scan")
	lon := flag.Float64("lon", 0, "longitude of the location to scan")
	city := flag.String("city", "", "city label (optional)")
	state := flag.String("state", "", "state label (optional)")
	points := flag.Int("points", 40, "forecast points to fetch (1-40)")
	current := flag.Bool("current", false, "also fetch and print current conditions")
	timeout := flag.Duration("timeout", 10*time.Second, "provider fetch timeout")
	flag.Parse()

	if *lat == 0 && *lon == 0 {
		flag.Usage()
		return fmt.Errorf("missing required flags: -lat, -lon")
	}

	apiKey := os.Getenv("OWM_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("OWM_API_KEY is required")
	}
	baseURL := os.Getenv("OWM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()
	source := openweather.NewClient(apiKey, baseURL, *timeout, metrics, logger)

	loc := domain.Location{Lat: *lat, Lon: *lon, City: *city, State: *state}
	store := &stdoutStore{enc: newIndentEncoder()}
	s := scanner.New(source, store, nil, []domain.Location{loc}, *points, logger, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), 2*(*timeout))
	defer cancel()

	if *current {
		classified, err := s.ObserveCurrentConditions(ctx, loc)
		if err != nil {
			return err
		}
		if classified == nil {
			return fmt.Errorf("current conditions unavailable for %.4f,%.4f", *lat, *lon)
		}
	}

	events, err := s.ScanLocation(ctx, loc)
	if err != nil {
		return err
	}

	log.Printf("%d storm event(s) detected over %d forecast points", len(events), *points)
	return nil
}

func newIndentEncoder() *json.Encoder {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc
}
