package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Flood severity levels a reporter can pick from.
const (
	LevelMinor    = "minor"
	LevelModerate = "moderate"
	LevelSevere   = "severe"
)

// Report verification statuses. New reports always start as pending;
// only the review endpoint moves them to verified or rejected.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// ReportUpdate is one entry in a report's review trail, stored as JSONB.
type ReportUpdate struct {
	Time    JSONTime `json:"time"`
	Message string   `json:"message"`
}

// FloodReport represents one citizen-submitted flood report, including the
// household profile used to prioritize rescue and relief.
type FloodReport struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Level       string         `gorm:"size:20;not null" json:"level"`
	Location    string         `gorm:"size:255;not null" json:"location"`
	Latitude    float64        `gorm:"not null" json:"latitude"`
	Longitude   float64        `gorm:"not null" json:"longitude"`
	ImageURLs   pq.StringArray `gorm:"type:text[]" json:"imageUrls"`

	HouseholdSize     int  `gorm:"default:1" json:"household_size"`
	ChildrenUnder5    int  `gorm:"default:0" json:"children_under_5"`
	ElderlyMembers    int  `gorm:"default:0" json:"elderly_members"`
	DisabledMembers   int  `gorm:"default:0" json:"disabled_bedridden_members"`
	MedicalConditions bool `gorm:"default:false" json:"has_medical_conditions"`
	PetsLivestock     int  `gorm:"default:0" json:"pets_livestock"`

	Status  string         `gorm:"size:20;default:pending" json:"status"`
	Updates datatypes.JSON `gorm:"type:jsonb" json:"updates"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *FloodReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// ValidLevel reports whether s is one of the three accepted flood levels.
func ValidLevel(s string) bool {
	return s == LevelMinor || s == LevelModerate || s == LevelSevere
}
