package handlers

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"floodwatch/models"
)

// alertMaxAge is how long an alert stays in the active feed.
const alertMaxAge = 24 * time.Hour

// SweepStaleAlerts deactivates alerts older than alertMaxAge and returns
// how many were swept.
func SweepStaleAlerts(db *gorm.DB) (int64, error) {
	cutoff := time.Now().Add(-alertMaxAge)
	result := db.Model(&models.Alert{}).
		Where("is_active = ? AND timestamp < ?", true, cutoff).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// InitCronJobs starts the background maintenance schedule.
func InitCronJobs(db *gorm.DB) {
	c := cron.New()

	// Alert expiry: every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		swept, err := SweepStaleAlerts(db)
		if err != nil {
			log.Println("CronJob: alert sweep failed:", err)
			return
		}
		if swept > 0 {
			log.Printf("CronJob: deactivated %d stale alerts", swept)
		}
	})
	if err != nil {
		log.Println("Error scheduling alert sweep:", err)
	}

	c.Start()
}
