package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floodwatch/geo"
	"floodwatch/models"
)

func TestCounterFloors(t *testing.T) {
	form := NewReportForm()

	assert.Equal(t, 1, form.HouseholdSize.Value())
	form.HouseholdSize.Decrement()
	form.HouseholdSize.Decrement()
	assert.Equal(t, 1, form.HouseholdSize.Value(), "household size never drops below one")

	form.HouseholdSize.Increment()
	form.HouseholdSize.Increment()
	assert.Equal(t, 3, form.HouseholdSize.Value())
	form.HouseholdSize.Decrement()
	assert.Equal(t, 2, form.HouseholdSize.Value())

	assert.Equal(t, 0, form.ChildrenUnder5.Value())
	form.ChildrenUnder5.Decrement()
	assert.Equal(t, 0, form.ChildrenUnder5.Value(), "zero-floored counters stay at zero")

	form.PetsLivestock.Increment()
	form.PetsLivestock.Decrement()
	form.PetsLivestock.Decrement()
	assert.Equal(t, 0, form.PetsLivestock.Value())
}

func TestValidatePriority(t *testing.T) {
	form := NewReportForm()

	// Everything missing: description wins.
	assert.ErrorIs(t, form.Validate(), ErrDescriptionRequired)

	form.Description = "Water entering ground floor"
	assert.ErrorIs(t, form.Validate(), ErrLevelRequired)

	form.Level = "knee-deep"
	assert.ErrorIs(t, form.Validate(), ErrLevelRequired, "unknown levels are rejected")

	form.Level = models.LevelModerate
	assert.ErrorIs(t, form.Validate(), ErrLocationRequired)

	form.Location = "Taman Melawati"
	assert.ErrorIs(t, form.Validate(), ErrLocationRequired, "location text without a coordinate fix is incomplete")

	form.Coordinates = &geo.Coordinate{}
	assert.ErrorIs(t, form.Validate(), ErrLocationRequired, "zero coordinates do not count as a position fix")

	form.Coordinates = &geo.Coordinate{Latitude: 3.1390, Longitude: 101.6869}
	assert.NoError(t, form.Validate())

	form.Location = ""
	assert.ErrorIs(t, form.Validate(), ErrLocationRequired, "coordinates without a location name are incomplete")
}

func TestFormReset(t *testing.T) {
	form := NewReportForm()
	form.Description = "Drain overflow"
	form.Level = models.LevelSevere
	form.Location = "Jalan Ampang"
	form.Images = []string{"file:///a.jpg"}
	form.HouseholdSize.Increment()
	form.ElderlyMembers.Increment()
	form.MedicalConditions = true

	form.Reset()

	assert.Empty(t, form.Description)
	assert.Empty(t, form.Level)
	assert.Empty(t, form.Location)
	assert.Empty(t, form.Images)
	assert.Equal(t, 1, form.HouseholdSize.Value())
	assert.Equal(t, 0, form.ElderlyMembers.Value())
	assert.False(t, form.MedicalConditions)
}
