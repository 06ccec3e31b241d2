package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/treehub/storm-monitor/internal/domain"
)

// maxForecastPoints is the provider's 5-day/3-hour window limit.
const maxForecastPoints = 40

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Weather provider.
	OWMAPIKey      string
	OWMBaseURL     string
	ForecastPoints int
	FetchTimeout   time.Duration

	// Monitored locations and sweep cadence.
	Locations    []domain.Location
	ScanInterval time.Duration

	// Event store.
	ClickHouseAddr     string
	ClickHouseDatabase string
	ClickHouseUsername string
	ClickHousePassword string

	// Downstream event feed.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaEventsTopic string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is merged in first when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	fetchTimeout, err := parseDurationEnv("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	scanInterval, err := parseDurationEnv("SCAN_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	forecastPoints, err := parseForecastPoints()
	if err != nil {
		return nil, err
	}

	locations, err := loadLocations(os.Getenv("LOCATIONS_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OWMAPIKey:      os.Getenv("OWM_API_KEY"),
		OWMBaseURL:     envOrDefault("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		ForecastPoints: forecastPoints,
		FetchTimeout:   fetchTimeout,

		Locations:    locations,
		ScanInterval: scanInterval,

		ClickHouseAddr:     envOrDefault("CLICKHOUSE_ADDR", "localhost:9000"),
		ClickHouseDatabase: envOrDefault("CLICKHOUSE_DATABASE", "storm_monitor"),
		ClickHouseUsername: envOrDefault("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),

		KafkaEnabled:     envOrDefault("KAFKA_ENABLED", "true") == "true",
		KafkaBrokers:     splitBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaEventsTopic: envOrDefault("KAFKA_EVENTS_TOPIC", "storm-events"),

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.OWMAPIKey == "" {
		return nil, errors.New("OWM_API_KEY is required")
	}
	if len(cfg.Locations) == 0 {
		return nil, errors.New("monitored location roster is empty")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
	}

	return cfg, nil
}

// loadLocations returns the roster from the given JSON file, or the built-in
// default roster when no file is configured.
func loadLocations(path string) ([]domain.Location, error) {
	if path == "" {
		return DefaultRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read LOCATIONS_FILE: %w", err)
	}

	var locations []domain.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("parse LOCATIONS_FILE: %w", err)
	}
	return locations, nil
}

func parseForecastPoints() (int, error) {
	s := envOrDefault("FORECAST_POINTS", strconv.Itoa(maxForecastPoints))
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxForecastPoints {
		return 0, fmt.Errorf("invalid FORECAST_POINTS %q: must be 1-%d", s, maxForecastPoints)
	}
	return n, nil
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, s)
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
