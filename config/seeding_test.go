package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodwatch/models"
)

func TestSampleAlerts(t *testing.T) {
	alerts := SampleAlerts("demo-user")
	require.Len(t, alerts, 5)

	for _, a := range alerts {
		assert.Equal(t, "demo-user", a.UserID)
		assert.True(t, a.IsActive)
		assert.NotEmpty(t, a.Actions, "every alert carries recommended actions")
	}

	// Newest first, one hour apart.
	for i := 1; i < len(alerts); i++ {
		prev := time.Time(alerts[i-1].Timestamp)
		curr := time.Time(alerts[i].Timestamp)
		assert.True(t, curr.Before(prev), "feed must be ordered newest first")
	}

	assert.Equal(t, "Flash Flood Warning", alerts[0].Title)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
}

func TestSampleAIReports(t *testing.T) {
	reports := SampleAIReports("system")
	require.Len(t, reports, 5)

	risks := map[string]bool{}
	for _, r := range reports {
		assert.Equal(t, "system", r.UserID)
		assert.GreaterOrEqual(t, r.ConfidenceScore, 0)
		assert.LessOrEqual(t, r.ConfidenceScore, 100)
		risks[r.RiskLevel] = true
	}
	assert.Len(t, risks, 4, "the demo feed covers every risk level")

	assert.Equal(t, models.RiskExtreme, reports[2].RiskLevel)
	assert.Equal(t, 92, reports[2].ConfidenceScore)
}
