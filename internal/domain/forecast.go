package domain

// Impact is the forecast operational footprint of a closed storm period.
type Impact struct {
	RadiusMiles     float64
	PredictedDamage DamageLevel
	PredictedDemand DemandLevel
}

// ForecastImpact derives the impact footprint from a closed period's max wind
// and severity. Pure and deterministic.
func ForecastImpact(period StormPeriod) Impact {
	return Impact{
		RadiusMiles:     impactRadiusMiles(period.SeverityTier),
		PredictedDamage: predictDamage(period),
		PredictedDemand: predictServiceDemand(period),
	}
}

// impactRadiusMiles is a fixed lookup keyed on severity alone; wind does not
// widen the radius.
func impactRadiusMiles(tier SeverityTier) float64 {
	switch tier {
	case SeveritySevere:
		return 50
	case SeverityHigh:
		return 30
	case SeverityMedium:
		return 15
	default:
		return 10
	}
}

func predictDamage(period StormPeriod) DamageLevel {
	switch {
	case period.MaxWindSpeedMph > 50 || period.SeverityTier == SeveritySevere:
		return DamageHigh
	case period.MaxWindSpeedMph > 35 || period.SeverityTier == SeverityHigh:
		return DamageMedium
	default:
		return DamageLow
	}
}

func predictServiceDemand(period StormPeriod) DemandLevel {
	switch {
	case period.MaxWindSpeedMph > 50 || period.SeverityTier == SeveritySevere:
		return DemandExtreme
	case period.MaxWindSpeedMph > 35 || period.SeverityTier == SeverityHigh:
		return DemandHigh
	case period.MaxWindSpeedMph > 25 || period.SeverityTier == SeverityMedium:
		return DemandMedium
	default:
		return DemandLow
	}
}
