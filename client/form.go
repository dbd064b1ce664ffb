package client

import (
	"errors"

	"floodwatch/geo"
	"floodwatch/models"
)

// Validation failures, surfaced in priority order by Validate.
var (
	ErrDescriptionRequired = errors.New("Please provide a description")
	ErrLevelRequired       = errors.New("Please select a flood level")
	ErrLocationRequired    = errors.New("Please provide a location")
)

// Counter is a stepper input that never goes below its floor.
type Counter struct {
	value int
	floor int
}

func NewCounter(initial, floor int) Counter {
	if initial < floor {
		initial = floor
	}
	return Counter{value: initial, floor: floor}
}

func (c *Counter) Increment() { c.value++ }

func (c *Counter) Decrement() {
	if c.value > c.floor {
		c.value--
	}
}

func (c Counter) Value() int { return c.value }

// ReportForm holds the in-progress state of a flood report before
// submission.
type ReportForm struct {
	Description string
	Level       string
	Location    string
	Coordinates *geo.Coordinate
	Images      []string

	HouseholdSize     Counter
	ChildrenUnder5    Counter
	ElderlyMembers    Counter
	DisabledMembers   Counter
	PetsLivestock     Counter
	MedicalConditions bool
}

// NewReportForm returns a form in its initial state. A household always
// has at least one member; the other counters start and floor at zero.
func NewReportForm() *ReportForm {
	return &ReportForm{
		HouseholdSize:   NewCounter(1, 1),
		ChildrenUnder5:  NewCounter(0, 0),
		ElderlyMembers:  NewCounter(0, 0),
		DisabledMembers: NewCounter(0, 0),
		PetsLivestock:   NewCounter(0, 0),
	}
}

// Validate checks required fields and returns the first failure:
// description, then level, then location. A location needs both the text
// and a non-zero coordinate fix.
func (f *ReportForm) Validate() error {
	if f.Description == "" {
		return ErrDescriptionRequired
	}
	if !models.ValidLevel(f.Level) {
		return ErrLevelRequired
	}
	if f.Location == "" || !f.hasCoordinates() {
		return ErrLocationRequired
	}
	return nil
}

func (f *ReportForm) hasCoordinates() bool {
	if f.Coordinates == nil {
		return false
	}
	return f.Coordinates.Latitude != 0 || f.Coordinates.Longitude != 0
}

// Reset returns every field to its initial state.
func (f *ReportForm) Reset() {
	*f = *NewReportForm()
}

// payload builds the request body for report creation.
func (f *ReportForm) payload(imageURLs []string) map[string]interface{} {
	body := map[string]interface{}{
		"description":                f.Description,
		"level":                      f.Level,
		"location":                   f.Location,
		"imageUrls":                  imageURLs,
		"household_size":             f.HouseholdSize.Value(),
		"children_under_5":           f.ChildrenUnder5.Value(),
		"elderly_members":            f.ElderlyMembers.Value(),
		"disabled_bedridden_members": f.DisabledMembers.Value(),
		"has_medical_conditions":     f.MedicalConditions,
		"pets_livestock":             f.PetsLivestock.Value(),
	}
	if f.Coordinates != nil {
		body["latitude"] = f.Coordinates.Latitude
		body["longitude"] = f.Coordinates.Longitude
	}
	return body
}
