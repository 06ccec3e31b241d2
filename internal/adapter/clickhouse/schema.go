package clickhouse

// allTables returns the DDL for every table, executed idempotently at startup.
func allTables() []string {
	return []string{
		stormEventsTable,
		currentConditionsTable,
	}
}

const stormEventsTable = `
CREATE TABLE IF NOT EXISTS storm_events (
	id String,
	event_type LowCardinality(String),
	severity LowCardinality(String),
	affected_states Array(String),
	affected_cities Array(String),
	affected_zip_codes Array(String),
	center_lat Float64,
	center_lon Float64,
	impact_radius_miles Float64,
	max_wind_speed_mph Float64,
	expected_duration_hours Float64,
	start_time DateTime('UTC'),
	end_time DateTime('UTC'),
	predicted_damage LowCardinality(String),
	predicted_service_demand LowCardinality(String),
	processed_at DateTime('UTC')
) ENGINE = MergeTree()
ORDER BY (start_time, id)
`

const currentConditionsTable = `
CREATE TABLE IF NOT EXISTS current_conditions (
	city String,
	state LowCardinality(String),
	lat Float64,
	lon Float64,
	observed_at DateTime('UTC'),
	condition_code LowCardinality(String),
	temperature_f Float64,
	wind_speed_mph Float64,
	precipitation_in Float64,
	is_storm_condition Bool,
	storm_type LowCardinality(String),
	severity_tier LowCardinality(String),
	processed_at DateTime('UTC')
) ENGINE = MergeTree()
ORDER BY (observed_at, city)
`
