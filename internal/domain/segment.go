package domain

import "time"

// StormPeriod is a maximal contiguous run of storm samples for one location.
// A period is owned by a single Segment call; it is never shared across
// locations or concurrent scans.
type StormPeriod struct {
	StartTime       time.Time
	EndTime         time.Time
	MaxWindSpeedMph float64

	// DominantType is the first storm sample's type and is not re-evaluated
	// as the period extends.
	DominantType string

	// SeverityTier is the highest tier observed among member samples.
	SeverityTier SeverityTier

	// MemberSamples is kept for diagnostics only; nothing downstream of
	// closure requires it.
	MemberSamples []ClassifiedSample
}

// Segment groups a chronologically ordered sample sequence into storm
// periods. Single pass, one open-period accumulator. An all-clear sequence
// yields no periods; an all-storm sequence yields exactly one spanning the
// whole input; the non-storm sample that closes a period never opens a new one.
func Segment(samples []ClassifiedSample) []StormPeriod {
	var periods []StormPeriod
	var open *StormPeriod

	for _, sample := range samples {
		switch {
		case sample.IsStormCondition && open == nil:
			open = openPeriod(sample)
		case sample.IsStormCondition:
			extendPeriod(open, sample)
		case open != nil:
			periods = append(periods, *open)
			open = nil
		}
	}

	if open != nil {
		periods = append(periods, *open)
	}
	return periods
}

func openPeriod(sample ClassifiedSample) *StormPeriod {
	return &StormPeriod{
		StartTime:       sample.ObservedAt,
		EndTime:         sample.ObservedAt,
		MaxWindSpeedMph: sample.WindSpeedMph,
		DominantType:    sample.StormType,
		SeverityTier:    sample.SeverityTier,
		MemberSamples:   []ClassifiedSample{sample},
	}
}

func extendPeriod(period *StormPeriod, sample ClassifiedSample) {
	period.EndTime = sample.ObservedAt
	if sample.WindSpeedMph > period.MaxWindSpeedMph {
		period.MaxWindSpeedMph = sample.WindSpeedMph
	}
	if sample.SeverityTier.Exceeds(period.SeverityTier) {
		period.SeverityTier = sample.SeverityTier
	}
	period.MemberSamples = append(period.MemberSamples, sample)
}

// Duration is the inclusive span of the period's member timestamps. Zero for
// a single-sample period.
func (p StormPeriod) Duration() time.Duration {
	return p.EndTime.Sub(p.StartTime)
}
