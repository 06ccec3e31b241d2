// Package clickhouse persists storm events and current-conditions snapshots.
// All writes are append-only inserts; duplicate events across overlapping
// scans are kept by design.
package clickhouse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/treehub/storm-monitor/internal/domain"
)

// Store implements the scanner's EventStore against ClickHouse.
type Store struct {
	conn   driver.Conn
	logger *slog.Logger
}

// New connects to ClickHouse, verifies the connection, and creates the
// schema if missing.
func New(addr, database, username, password string, logger *slog.Logger) (*Store, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
		DialTimeout: 5 * time.Second,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to clickhouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	s := &Store{conn: conn, logger: logger}
	if err := s.initSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	logger.Info("connected to clickhouse", "addr", addr, "database", database)
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	for _, ddl := range allTables() {
		if err := s.conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// SaveStormEvent inserts one finalized storm event.
func (s *Store) SaveStormEvent(ctx context.Context, event domain.StormEvent) error {
	const query = `
		INSERT INTO storm_events (
			id, event_type, severity,
			affected_states, affected_cities, affected_zip_codes,
			center_lat, center_lon,
			impact_radius_miles, max_wind_speed_mph, expected_duration_hours,
			start_time, end_time,
			predicted_damage, predicted_service_demand,
			processed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := s.conn.Exec(ctx, query, stormEventArgs(event)...)
	if err != nil {
		return fmt.Errorf("insert storm event: %w", err)
	}
	return nil
}

// SaveConditions inserts one current-conditions snapshot.
func (s *Store) SaveConditions(ctx context.Context, snap domain.ConditionsSnapshot) error {
	const query = `
		INSERT INTO current_conditions (
			city, state, lat, lon,
			observed_at, condition_code,
			temperature_f, wind_speed_mph, precipitation_in,
			is_storm_condition, storm_type, severity_tier,
			processed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := s.conn.Exec(ctx, query, conditionsArgs(snap)...)
	if err != nil {
		return fmt.Errorf("insert conditions snapshot: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// stormEventArgs flattens an event into insert arguments in column order.
func stormEventArgs(event domain.StormEvent) []any {
	return []any{
		event.ID,
		event.EventType,
		string(event.Severity),
		event.AffectedStates,
		event.AffectedCities,
		event.AffectedZipCodes,
		event.CenterLat,
		event.CenterLon,
		event.ImpactRadiusMiles,
		event.MaxWindSpeedMph,
		event.ExpectedDurationHours,
		event.StartTime,
		event.EndTime,
		string(event.PredictedDamage),
		string(event.PredictedServiceDemand),
		event.ProcessedAt,
	}
}

func conditionsArgs(snap domain.ConditionsSnapshot) []any {
	return []any{
		snap.Location.City,
		snap.Location.State,
		snap.Location.Lat,
		snap.Location.Lon,
		snap.ObservedAt,
		snap.ConditionCode,
		snap.TemperatureF,
		snap.WindSpeedMph,
		snap.PrecipitationIn,
		snap.IsStormCondition,
		snap.StormType,
		string(snap.SeverityTier),
		snap.ProcessedAt,
	}
}
