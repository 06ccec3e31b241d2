// Package domain models storm detection for tree-care service demand forecasting.
//
// # Data Source
//
// Weather samples come from the OpenWeatherMap current-weather and 5-day/3-hour
// forecast APIs, fetched in imperial units (Fahrenheit, mph). The scanner polls
// a fixed roster of monitored US cities; each sweep pulls up to 40 forecast
// points per city (the full 5-day window at 3-hour cadence).
//
// # Classification
//
// A sample is a storm sample when its condition is Thunderstorm, Tornado, or
// Squall, or when wind exceeds 25 mph. All thresholds are strict greater-than:
// exactly 25 mph is not a storm sample.
//
// Storm type, evaluated only for storm samples:
//
//	Tornado condition       → "Tornado"
//	Thunderstorm condition  → "Thunderstorm"
//	wind > 40 mph           → "High Wind Event"
//	wind > 25 mph           → "Wind Advisory"
//	otherwise               → "Weather Event"
//
// Severity, evaluated for every sample because freezing temperatures raise
// period severity even when they trigger no storm on their own:
//
//	Severe  Tornado condition or wind > 50 mph
//	High    Thunderstorm condition or wind > 35 mph
//	Medium  wind > 20 mph or temperature < 32°F
//	Low     otherwise
//
// # Segmentation
//
// [Segment] groups a chronologically ordered sample sequence into maximal
// contiguous runs of storm samples. A period opens on the first storm sample,
// extends through contiguous storm samples (running max wind, highest
// severity), and closes on the first non-storm sample or end of input. The
// closing non-storm sample never starts a period. A single isolated storm
// sample yields a period with StartTime == EndTime.
//
// # Impact Forecast
//
// [ForecastImpact] derives an impact radius from severity (50/30/15/10 miles
// for Severe/High/Medium/Low) and predicts property damage and tree-care
// service demand from max wind and severity. These feed the downstream
// lead-generation and crew-alert workflows.
//
// # Event Identity
//
// Storm event IDs are random UUIDs, not content hashes. Repeated scans of a
// still-ongoing storm therefore insert distinct events for the same physical
// storm; the platform has never deduplicated across scans and downstream
// consumers see every sweep's output. Zip-code enrichment of affected areas
// awaits a geocoding service and AffectedZipCodes is always empty.
package domain
