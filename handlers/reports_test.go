package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floodwatch/models"
)

func TestCreateReportValidation(t *testing.T) {
	req := createReportReq{}
	assert.Equal(t, "Please provide a description", req.validate())

	req.Description = "Water rising fast"
	assert.Equal(t, "Please select a flood level", req.validate())

	req.Level = "catastrophic"
	assert.Equal(t, "Please select a flood level", req.validate(), "only the three known levels pass")

	req.Level = models.LevelSevere
	assert.Equal(t, "Please provide a location", req.validate())

	req.Location = "Shah Alam"
	assert.Equal(t, "Please provide a location", req.validate(), "zero coordinates are not a position fix")

	req.Latitude = 3.0733
	req.Longitude = 101.5185
	assert.Empty(t, req.validate())
}

func TestValidSeverity(t *testing.T) {
	for _, s := range []string{models.SeverityMinor, models.SeverityModerate, models.SeveritySevere, models.SeverityCritical} {
		assert.True(t, validSeverity(s), s)
	}
	assert.False(t, validSeverity("apocalyptic"))
	assert.False(t, validSeverity(""))
	assert.False(t, validSeverity("Critical"), "severities are lowercase on the wire")
}
