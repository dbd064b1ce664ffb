package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Risk levels an AI assessment can assign, ordered least to most severe.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
	RiskExtreme  = "extreme"
)

// AIReport is a machine-generated flood risk assessment for a region,
// distinct from a raw Alert. Read-only for clients.
type AIReport struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             string    `gorm:"size:100;index;default:system" json:"userId"`
	Title              string    `gorm:"size:255;not null" json:"title"`
	Analysis           string    `gorm:"type:text" json:"analysis"`
	RiskLevel          string    `gorm:"size:20;not null" json:"riskLevel"`
	PredictedImpact    string    `gorm:"type:text" json:"predictedImpact"`
	RecommendedActions string    `gorm:"type:text" json:"recommendedActions"`
	ExpectedDuration   string    `gorm:"size:50" json:"expectedDuration"`
	Location           string    `gorm:"size:255" json:"location"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	ConfidenceScore    int       `gorm:"check:confidence_score >= 0 AND confidence_score <= 100" json:"confidenceScore"`
	Timestamp          JSONTime  `gorm:"not null" json:"timestamp"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (r *AIReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
