package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	assert.Equal(t, Dark, Select("dark"))
	assert.Equal(t, Dark, Select("DARK"))
	assert.Equal(t, Light, Select("light"))
	assert.Equal(t, Light, Select(""), "unknown schemes fall back to light")
}

func TestAlertSeverityColor(t *testing.T) {
	for _, th := range []Theme{Light, Dark} {
		assert.Equal(t, th.Error, AlertSeverityColor("critical", th))
		assert.Equal(t, "#FF4500", AlertSeverityColor("severe", th))
		assert.Equal(t, th.Warning, AlertSeverityColor("moderate", th))
		assert.Equal(t, th.Success, AlertSeverityColor("minor", th))
		assert.Equal(t, th.Primary, AlertSeverityColor("unknown", th))
		assert.Equal(t, th.Error, AlertSeverityColor("CRITICAL", th), "matching is case-insensitive")
	}
}

func TestRiskLevelColor(t *testing.T) {
	for _, th := range []Theme{Light, Dark} {
		assert.Equal(t, th.Error, RiskLevelColor("extreme", th))
		assert.Equal(t, "#FF4500", RiskLevelColor("high", th))
		assert.Equal(t, th.Warning, RiskLevelColor("moderate", th))
		assert.Equal(t, th.Success, RiskLevelColor("low", th))
		assert.Equal(t, th.Primary, RiskLevelColor("", th))
	}
}

func TestZoneRiskColor(t *testing.T) {
	assert.Equal(t, Light.Error, ZoneRiskColor("high", Light))
	assert.Equal(t, Light.Warning, ZoneRiskColor("moderate", Light))
	assert.Equal(t, Light.Success, ZoneRiskColor("low", Light))
	assert.Equal(t, Light.Primary, ZoneRiskColor("severe", Light))
}
