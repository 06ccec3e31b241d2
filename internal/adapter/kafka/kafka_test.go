package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treehub/storm-monitor/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 4, 18, 15, 10, 0, 0, time.UTC)
	event := domain.StormEvent{
		ID:                     "evt-1",
		EventType:              "Thunderstorm",
		Severity:               domain.SeverityHigh,
		AffectedStates:         []string{"TX"},
		AffectedCities:         []string{"Dallas"},
		PredictedServiceDemand: domain.DemandHigh,
		ProcessedAt:            now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("evt-1"), msg.Key)
	assert.Contains(t, string(msg.Value), `"type":"Thunderstorm"`)
	assert.Contains(t, string(msg.Value), `"severity":"High"`)
	assert.Contains(t, string(msg.Value), `"predicted_service_demand":"High"`)
	assert.NotContains(t, string(msg.Value), "affected_zip_codes", "empty zips omitted")

	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("Thunderstorm"), msg.Headers[0].Value)
	assert.Equal(t, "severity", msg.Headers[1].Key)
	assert.Equal(t, []byte("High"), msg.Headers[1].Value)
	assert.Equal(t, "processed_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
}
