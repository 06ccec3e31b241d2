package domain

import "time"

// Weather condition categories as reported by the provider's weather[].main
// field. Only the three storm-bearing conditions are significant; everything
// else ("Clear", "Rain", "Snow", ...) passes through unmodified.
const (
	ConditionThunderstorm = "Thunderstorm"
	ConditionTornado      = "Tornado"
	ConditionSquall       = "Squall"
)

// Location is a monitored coordinate with optional city/state labels.
type Location struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	City  string  `json:"city,omitempty"`
	State string  `json:"state,omitempty"`
}

// WeatherSample is one observation or forecast point for a location.
// Samples handed to Segment must all belong to one location and be sorted
// ascending by ObservedAt; the segmenter does not re-sort.
type WeatherSample struct {
	Location      Location  `json:"location"`
	ObservedAt    time.Time `json:"observed_at"`
	ConditionCode string    `json:"condition_code"`
	Description   string    `json:"description,omitempty"`
	WindSpeedMph  float64   `json:"wind_speed_mph"`
	WindGustMph   float64   `json:"wind_gust_mph,omitempty"`
	TemperatureF  float64   `json:"temperature_f"`
	HumidityPct   float64   `json:"humidity_pct,omitempty"`
	PressureHpa   float64   `json:"pressure_hpa,omitempty"`

	// Rain plus snow over the last hour, inches. Zero when the provider
	// omits both blocks.
	PrecipitationIn float64 `json:"precipitation_in"`
}

// ClassifiedSample is a WeatherSample plus the derived storm fields.
// StormType is set only when IsStormCondition is true; SeverityTier is set
// for every sample.
type ClassifiedSample struct {
	WeatherSample

	IsStormCondition bool         `json:"is_storm_condition"`
	StormType        string       `json:"storm_type,omitempty"`
	SeverityTier     SeverityTier `json:"severity_tier"`
}

// SeverityTier is the ordered categorical severity scale used both per
// sample and per period.
type SeverityTier string

const (
	SeverityLow    SeverityTier = "Low"
	SeverityMedium SeverityTier = "Medium"
	SeverityHigh   SeverityTier = "High"
	SeveritySevere SeverityTier = "Severe"
)

// rank orders tiers Low < Medium < High < Severe. Unknown tiers rank below Low.
func (s SeverityTier) rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeveritySevere:
		return 4
	default:
		return 0
	}
}

// Exceeds reports whether s is strictly more severe than other.
func (s SeverityTier) Exceeds(other SeverityTier) bool {
	return s.rank() > other.rank()
}

// DamageLevel is the predicted property-damage scale.
type DamageLevel string

const (
	DamageLow    DamageLevel = "Low"
	DamageMedium DamageLevel = "Medium"
	DamageHigh   DamageLevel = "High"
)

// DemandLevel is the predicted tree-care service-demand scale.
type DemandLevel string

const (
	DemandLow     DemandLevel = "Low"
	DemandMedium  DemandLevel = "Medium"
	DemandHigh    DemandLevel = "High"
	DemandExtreme DemandLevel = "Extreme"
)
