package domain

import (
	"time"

	"github.com/google/uuid"
)

// StormEvent is the persisted, user-facing record derived from one closed
// storm period. The downstream agent layer consumes type, severity, affected
// states/cities, predicted service demand, and the start/end times; the rest
// is dashboard and diagnostics material.
//
// Events are created exactly once per closed period per scan and never
// updated. Overlapping scans of an ongoing storm produce distinct events.
type StormEvent struct {
	ID        string       `json:"id"`
	EventType string       `json:"type"`
	Severity  SeverityTier `json:"severity"`

	AffectedStates []string `json:"affected_states"`
	AffectedCities []string `json:"affected_cities"`

	// AffectedZipCodes stays empty until a geocoding service exists.
	AffectedZipCodes []string `json:"affected_zip_codes,omitempty"`

	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`

	ImpactRadiusMiles     float64 `json:"impact_radius_miles"`
	MaxWindSpeedMph       float64 `json:"max_wind_speed_mph"`
	ExpectedDurationHours float64 `json:"expected_duration_hours"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	PredictedDamage        DamageLevel `json:"predicted_damage"`
	PredictedServiceDemand DemandLevel `json:"predicted_service_demand"`

	ProcessedAt time.Time `json:"processed_at"`
}

// ConditionsSnapshot is the single-sample "current weather" record persisted
// for dashboard display. It reuses the classifier but never participates in
// segmentation.
type ConditionsSnapshot struct {
	Location         Location     `json:"location"`
	ObservedAt       time.Time    `json:"observed_at"`
	ConditionCode    string       `json:"condition_code"`
	TemperatureF     float64      `json:"temperature_f"`
	WindSpeedMph     float64      `json:"wind_speed_mph"`
	PrecipitationIn  float64      `json:"precipitation_in"`
	IsStormCondition bool         `json:"is_storm_condition"`
	StormType        string       `json:"storm_type,omitempty"`
	SeverityTier     SeverityTier `json:"severity_tier"`
	ProcessedAt      time.Time    `json:"processed_at"`
}

// BuildStormEvent assembles the persisted event for a closed period scanned
// at the given location. The center coordinate is the scan location itself,
// not a centroid of member samples.
func BuildStormEvent(loc Location, period StormPeriod, impact Impact) StormEvent {
	event := StormEvent{
		ID:        uuid.NewString(),
		EventType: period.DominantType,
		Severity:  period.SeverityTier,

		AffectedStates: []string{},
		AffectedCities: []string{},

		CenterLat: loc.Lat,
		CenterLon: loc.Lon,

		ImpactRadiusMiles:     impact.RadiusMiles,
		MaxWindSpeedMph:       period.MaxWindSpeedMph,
		ExpectedDurationHours: period.Duration().Hours(),

		StartTime: period.StartTime,
		EndTime:   period.EndTime,

		PredictedDamage:        impact.PredictedDamage,
		PredictedServiceDemand: impact.PredictedDemand,

		ProcessedAt: clock.Now().UTC(),
	}

	if loc.State != "" {
		event.AffectedStates = append(event.AffectedStates, loc.State)
	}
	if loc.City != "" {
		event.AffectedCities = append(event.AffectedCities, loc.City)
	}

	return event
}

// SnapshotConditions converts a classified current-weather sample into its
// persisted snapshot form.
func SnapshotConditions(sample ClassifiedSample) ConditionsSnapshot {
	return ConditionsSnapshot{
		Location:         sample.Location,
		ObservedAt:       sample.ObservedAt,
		ConditionCode:    sample.ConditionCode,
		TemperatureF:     sample.TemperatureF,
		WindSpeedMph:     sample.WindSpeedMph,
		PrecipitationIn:  sample.PrecipitationIn,
		IsStormCondition: sample.IsStormCondition,
		StormType:        sample.StormType,
		SeverityTier:     sample.SeverityTier,
		ProcessedAt:      clock.Now().UTC(),
	}
}
