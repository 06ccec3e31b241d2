package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleWith(condition string, windMph, tempF float64) WeatherSample {
	return WeatherSample{
		Location:      Location{Lat: 32.78, Lon: -96.80, City: "Dallas", State: "TX"},
		ObservedAt:    time.Date(2026, 4, 18, 12, 0, 0, 0, time.UTC),
		ConditionCode: condition,
		WindSpeedMph:  windMph,
		TemperatureF:  tempF,
	}
}

func TestClassify_StormTrigger(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		windMph   float64
		isStorm   bool
	}{
		{"thunderstorm condition", "Thunderstorm", 5, true},
		{"tornado condition", "Tornado", 5, true},
		{"squall condition", "Squall", 5, true},
		{"clear calm", "Clear", 10, false},
		{"rain calm", "Rain", 10, false},
		{"wind exactly 25 is not a storm", "Clear", 25, false},
		{"wind just above 25 is a storm", "Clear", 25.01, true},
		{"snow with high wind", "Snow", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(sampleWith(tt.condition, tt.windMph, 60))
			assert.Equal(t, tt.isStorm, result.IsStormCondition)
			if !tt.isStorm {
				assert.Empty(t, result.StormType)
			}
		})
	}
}

func TestClassify_StormType(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		windMph   float64
		stormType string
	}{
		{"tornado wins over wind", "Tornado", 60, "Tornado"},
		{"thunderstorm wins over wind", "Thunderstorm", 60, "Thunderstorm"},
		{"high wind event above 40", "Clear", 40.01, "High Wind Event"},
		{"wind exactly 40 is advisory", "Clear", 40, "Wind Advisory"},
		{"wind advisory above 25", "Clear", 25.01, "Wind Advisory"},
		{"squall with calm wind is generic", "Squall", 10, "Weather Event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(sampleWith(tt.condition, tt.windMph, 60))
			assert.True(t, result.IsStormCondition)
			assert.Equal(t, tt.stormType, result.StormType)
		})
	}
}

func TestClassify_SeverityTier(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		windMph   float64
		tempF     float64
		tier      SeverityTier
	}{
		{"tornado is severe", "Tornado", 5, 60, SeveritySevere},
		{"wind above 50 is severe", "Clear", 50.01, 60, SeveritySevere},
		{"wind exactly 50 is high", "Clear", 50, 60, SeverityHigh},
		{"thunderstorm is high", "Thunderstorm", 5, 60, SeverityHigh},
		{"wind above 35 is high", "Clear", 35.01, 60, SeverityHigh},
		{"wind above 20 is medium", "Clear", 20.01, 60, SeverityMedium},
		{"freezing is medium", "Snow", 5, 31.9, SeverityMedium},
		{"exactly freezing is low", "Clear", 5, 32, SeverityLow},
		{"calm and warm is low", "Clear", 5, 60, SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(sampleWith(tt.condition, tt.windMph, tt.tempF))
			assert.Equal(t, tt.tier, result.SeverityTier)
		})
	}
}

// Severity is derived even for non-storm samples; the segmenter relies on it.
func TestClassify_SeverityOnNonStormSamples(t *testing.T) {
	result := Classify(sampleWith("Snow", 5, 10))
	assert.False(t, result.IsStormCondition)
	assert.Equal(t, SeverityMedium, result.SeverityTier)
}

func TestClassify_Deterministic(t *testing.T) {
	sample := sampleWith("Thunderstorm", 42, 55)
	assert.Equal(t, Classify(sample), Classify(sample))
}

func TestSeverityTier_Ordering(t *testing.T) {
	assert.True(t, SeveritySevere.Exceeds(SeverityHigh))
	assert.True(t, SeverityHigh.Exceeds(SeverityMedium))
	assert.True(t, SeverityMedium.Exceeds(SeverityLow))
	assert.False(t, SeverityLow.Exceeds(SeverityLow))
	assert.False(t, SeverityMedium.Exceeds(SeverityHigh))
}
