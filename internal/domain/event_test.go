package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStormEvent(t *testing.T) {
	frozen := time.Date(2026, 4, 18, 18, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	loc := Location{Lat: 32.78, Lon: -96.80, City: "Dallas", State: "TX"}
	period := StormPeriod{
		StartTime:       segmentBase.Add(1 * time.Hour),
		EndTime:         segmentBase.Add(7 * time.Hour),
		MaxWindSpeedMph: 45,
		DominantType:    "Thunderstorm",
		SeverityTier:    SeverityHigh,
	}
	impact := ForecastImpact(period)

	event := BuildStormEvent(loc, period, impact)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Thunderstorm", event.EventType)
	assert.Equal(t, SeverityHigh, event.Severity)
	assert.Equal(t, []string{"TX"}, event.AffectedStates)
	assert.Equal(t, []string{"Dallas"}, event.AffectedCities)
	assert.Empty(t, event.AffectedZipCodes, "zip enrichment is unimplemented")
	assert.Equal(t, 32.78, event.CenterLat)
	assert.Equal(t, -96.80, event.CenterLon)
	assert.Equal(t, 30.0, event.ImpactRadiusMiles)
	assert.Equal(t, 45.0, event.MaxWindSpeedMph)
	assert.Equal(t, 6.0, event.ExpectedDurationHours)
	assert.Equal(t, period.StartTime, event.StartTime)
	assert.Equal(t, period.EndTime, event.EndTime)
	assert.Equal(t, DamageMedium, event.PredictedDamage)
	assert.Equal(t, DemandHigh, event.PredictedServiceDemand)
	assert.Equal(t, frozen, event.ProcessedAt)
}

// Each build gets a fresh ID: repeated scans of an ongoing storm insert
// distinct events rather than deduplicating.
func TestBuildStormEvent_DistinctIDs(t *testing.T) {
	loc := Location{Lat: 30.27, Lon: -97.74, City: "Austin", State: "TX"}
	period := StormPeriod{DominantType: "Wind Advisory", SeverityTier: SeverityMedium}

	a := BuildStormEvent(loc, period, ForecastImpact(period))
	b := BuildStormEvent(loc, period, ForecastImpact(period))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBuildStormEvent_UnlabeledLocation(t *testing.T) {
	event := BuildStormEvent(Location{Lat: 1, Lon: 2}, StormPeriod{}, Impact{})
	assert.Empty(t, event.AffectedStates)
	assert.Empty(t, event.AffectedCities)
	assert.NotNil(t, event.AffectedStates, "empty, not null, in serialized form")
	assert.NotNil(t, event.AffectedCities)
}

func TestSnapshotConditions(t *testing.T) {
	frozen := time.Date(2026, 4, 18, 18, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	classified := Classify(sampleWith("Thunderstorm", 42, 55))
	snap := SnapshotConditions(classified)

	require.True(t, snap.IsStormCondition)
	assert.Equal(t, "Thunderstorm", snap.StormType)
	assert.Equal(t, SeverityHigh, snap.SeverityTier)
	assert.Equal(t, classified.Location, snap.Location)
	assert.Equal(t, 42.0, snap.WindSpeedMph)
	assert.Equal(t, frozen, snap.ProcessedAt)
}
