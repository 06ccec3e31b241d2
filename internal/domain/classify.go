package domain

// Classify derives the storm fields for a single weather sample. It is pure
// and total: any numeric and categorical input yields a result.
//
// Severity is derived for every sample, storm or not, because a period's
// severity folds in effects (freezing temperature) that do not by themselves
// make a sample a storm sample.
func Classify(sample WeatherSample) ClassifiedSample {
	classified := ClassifiedSample{
		WeatherSample: sample,
		SeverityTier:  deriveSeverity(sample),
	}

	if isStormSample(sample) {
		classified.IsStormCondition = true
		classified.StormType = deriveStormType(sample)
	}

	return classified
}

// isStormSample applies the storm trigger: a storm-bearing condition code or
// wind strictly above 25 mph.
func isStormSample(sample WeatherSample) bool {
	switch sample.ConditionCode {
	case ConditionThunderstorm, ConditionTornado, ConditionSquall:
		return true
	}
	return sample.WindSpeedMph > 25
}

// deriveStormType labels a storm sample. Condition codes win over wind
// thresholds; Squall with calm wind falls through to the generic label.
func deriveStormType(sample WeatherSample) string {
	switch sample.ConditionCode {
	case ConditionTornado:
		return "Tornado"
	case ConditionThunderstorm:
		return "Thunderstorm"
	}

	switch {
	case sample.WindSpeedMph > 40:
		return "High Wind Event"
	case sample.WindSpeedMph > 25:
		return "Wind Advisory"
	default:
		return "Weather Event"
	}
}

// deriveSeverity maps a sample to the four-level severity scale. Thresholds
// are strict greater-than (strict less-than for the freezing check).
func deriveSeverity(sample WeatherSample) SeverityTier {
	switch {
	case sample.ConditionCode == ConditionTornado || sample.WindSpeedMph > 50:
		return SeveritySevere
	case sample.ConditionCode == ConditionThunderstorm || sample.WindSpeedMph > 35:
		return SeverityHigh
	case sample.WindSpeedMph > 20 || sample.TemperatureF < 32:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
