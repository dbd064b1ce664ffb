package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"floodwatch/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.FloodReport{})
			},
		},
		{
			ID: "20250819_add_feed_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Alert{}, &models.AIReport{})
			},
		},
		{
			ID: "20250902_report_status_index",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_flood_reports_status ON flood_reports (status)").Error
			},
		},
	})
	return m.Migrate()
}
