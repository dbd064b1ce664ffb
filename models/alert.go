package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert severities, ordered least to most urgent.
const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
	SeverityCritical = "critical"
)

// Alert is one entry in the global emergency feed. Alerts are read-only for
// clients; they are created by operators and expired by the sweeper job.
type Alert struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"size:100;index;default:system" json:"userId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Severity    string    `gorm:"size:20;not null" json:"severity"`
	Type        string    `gorm:"size:50" json:"type"`
	Actions     string    `gorm:"type:text" json:"actions"`
	Location    string    `gorm:"size:255" json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsActive    bool      `gorm:"default:true;index" json:"isActive"`
	Timestamp   JSONTime  `gorm:"not null" json:"timestamp"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *Alert) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
