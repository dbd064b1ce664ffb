package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"floodwatch/models"
)

// SampleAlerts returns the canonical demo alert feed, timestamped relative
// to now (newest first). userID tags ownership; the live feed uses "system".
func SampleAlerts(userID string) []models.Alert {
	now := time.Now()
	at := func(age time.Duration) models.JSONTime { return models.JSONTime(now.Add(-age)) }

	return []models.Alert{
		{
			UserID:      userID,
			Title:       "Flash Flood Warning",
			Description: "Heavy rainfall has caused flash flooding in low-lying areas. Residents are advised to move to higher ground immediately.",
			Severity:    models.SeverityCritical,
			Type:        "flood",
			Actions:     "Move to higher ground. Avoid walking or driving through flood waters. Follow evacuation orders if issued.",
			Location:    "Kuala Lumpur City Center",
			Latitude:    3.1390,
			Longitude:   101.6869,
			IsActive:    true,
			Timestamp:   at(0),
		},
		{
			UserID:      userID,
			Title:       "Road Closure Alert",
			Description: "Several major roads are closed due to flooding. Avoid travel in affected areas.",
			Severity:    models.SeveritySevere,
			Type:        "road_closure",
			Actions:     "Use alternative routes. Check local traffic updates before traveling. Stay home if possible.",
			Location:    "Petaling Jaya",
			Latitude:    3.1073,
			Longitude:   101.6068,
			IsActive:    true,
			Timestamp:   at(1 * time.Hour),
		},
		{
			UserID:      userID,
			Title:       "Evacuation Order",
			Description: "Mandatory evacuation order for residents in Ampang Jaya due to rising water levels.",
			Severity:    models.SeverityCritical,
			Type:        "evacuation_order",
			Actions:     "Evacuate immediately to designated shelters. Bring essential items only. Register at evacuation centers.",
			Location:    "Ampang Jaya",
			Latitude:    3.1488,
			Longitude:   101.7614,
			IsActive:    true,
			Timestamp:   at(2 * time.Hour),
		},
		{
			UserID:      userID,
			Title:       "Weather Warning",
			Description: "Heavy rainfall expected to continue for the next 24 hours. Potential for more flooding.",
			Severity:    models.SeverityModerate,
			Type:        "weather_warning",
			Actions:     "Prepare emergency supplies. Charge devices. Monitor official channels for updates.",
			Location:    "Selangor State",
			Latitude:    3.0738,
			Longitude:   101.5183,
			IsActive:    true,
			Timestamp:   at(3 * time.Hour),
		},
		{
			UserID:      userID,
			Title:       "Landslide Risk",
			Description: "Increased risk of landslides in hilly areas due to saturated soil from continuous rain.",
			Severity:    models.SeveritySevere,
			Type:        "landslide",
			Actions:     "Evacuate if in high-risk areas. Watch for signs of land movement. Report cracks or unusual sounds.",
			Location:    "Bukit Antarabangsa",
			Latitude:    3.1879,
			Longitude:   101.7644,
			IsActive:    true,
			Timestamp:   at(4 * time.Hour),
		},
	}
}

// SampleAIReports returns the canonical demo risk assessments, one per
// region, timestamped one day apart (newest first).
func SampleAIReports(userID string) []models.AIReport {
	now := time.Now()
	at := func(age time.Duration) models.JSONTime { return models.JSONTime(now.Add(-age)) }

	return []models.AIReport{
		{
			UserID:             userID,
			Title:              "Flood Risk Analysis: Klang Valley",
			Analysis:           "Based on current rainfall patterns, river levels, and terrain analysis, there is a high risk of flooding in the Klang Valley region over the next 48 hours.",
			RiskLevel:          models.RiskHigh,
			PredictedImpact:    "Potential flooding of low-lying areas, disruption to transportation networks, and possible damage to infrastructure. Approximately 15,000 residents may be affected.",
			RecommendedActions: "Local authorities should prepare evacuation centers, deploy emergency response teams, and issue early warnings to residents in flood-prone areas. Residents should prepare emergency kits and follow official guidance.",
			ExpectedDuration:   "48-72 hours",
			Location:           "Klang Valley",
			Latitude:           3.0738,
			Longitude:          101.5183,
			ConfidenceScore:    85,
			Timestamp:          at(0),
		},
		{
			UserID:             userID,
			Title:              "Flood Risk Analysis: Johor Bahru",
			Analysis:           "Analysis of weather patterns and drainage systems indicates moderate risk of urban flooding in Johor Bahru, particularly in areas with poor drainage infrastructure.",
			RiskLevel:          models.RiskModerate,
			PredictedImpact:    "Localized flooding in urban areas, temporary road closures, and minor disruptions to daily activities. Approximately 5,000 residents may experience some impact.",
			RecommendedActions: "Municipal authorities should clear drainage systems and prepare for water pumping operations. Residents should avoid flood-prone areas and prepare for possible disruptions.",
			ExpectedDuration:   "24-36 hours",
			Location:           "Johor Bahru",
			Latitude:           1.4927,
			Longitude:          103.7414,
			ConfidenceScore:    78,
			Timestamp:          at(24 * time.Hour),
		},
		{
			UserID:             userID,
			Title:              "Flood Risk Analysis: Penang Island",
			Analysis:           "Combination of high tides and heavy rainfall creates extreme flood risk for coastal areas of Penang Island. Storm surge potential is significant.",
			RiskLevel:          models.RiskExtreme,
			PredictedImpact:    "Severe flooding of coastal areas, potential damage to buildings and infrastructure, and significant disruption to transportation and essential services. Up to 20,000 residents may need to evacuate.",
			RecommendedActions: "Immediate evacuation of low-lying coastal areas. Deployment of emergency response teams and resources. Establishment of emergency shelters inland.",
			ExpectedDuration:   "72-96 hours",
			Location:           "Penang Island",
			Latitude:           5.4141,
			Longitude:          100.3288,
			ConfidenceScore:    92,
			Timestamp:          at(48 * time.Hour),
		},
		{
			UserID:             userID,
			Title:              "Flood Risk Analysis: Kota Kinabalu",
			Analysis:           "Current weather conditions and river levels suggest low risk of significant flooding in Kota Kinabalu, though isolated incidents may occur in known flood-prone areas.",
			RiskLevel:          models.RiskLow,
			PredictedImpact:    "Minor localized flooding possible in known problem areas. Limited impact on infrastructure and daily activities expected.",
			RecommendedActions: "Standard monitoring of weather conditions and river levels. No special measures required beyond normal preparedness.",
			ExpectedDuration:   "12-24 hours",
			Location:           "Kota Kinabalu",
			Latitude:           5.9804,
			Longitude:          116.0735,
			ConfidenceScore:    65,
			Timestamp:          at(72 * time.Hour),
		},
		{
			UserID:             userID,
			Title:              "Flood Risk Analysis: Kuching",
			Analysis:           "Heavy rainfall upstream of major rivers combined with high tide conditions creates high flood risk for Kuching and surrounding areas.",
			RiskLevel:          models.RiskHigh,
			PredictedImpact:    "Significant flooding along riverbanks, potential isolation of some communities, and disruption to transportation and essential services. Approximately 10,000 residents may be affected.",
			RecommendedActions: "Evacuation of flood-prone areas along rivers. Preparation of emergency shelters and supplies. Deployment of rescue teams to potential hotspots.",
			ExpectedDuration:   "48-60 hours",
			Location:           "Kuching",
			Latitude:           1.5497,
			Longitude:          110.3626,
			ConfidenceScore:    88,
			Timestamp:          at(96 * time.Hour),
		},
	}
}

// SeedFeeds populates the alert and AI report tables with the demo feed
// when they are empty. Safe to call on every startup.
func SeedFeeds(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Alert{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(SampleAlerts("system")).Error; err != nil {
			return fmt.Errorf("seeding alerts: %w", err)
		}
		log.Println("Seeded demo alert feed")
	}

	if err := db.Model(&models.AIReport{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(SampleAIReports("system")).Error; err != nil {
			return fmt.Errorf("seeding AI reports: %w", err)
		}
		log.Println("Seeded demo AI report feed")
	}
	return nil
}

// GenerateSampleData inserts up to alertCount alerts and reportCount AI
// reports tagged with userID and returns what was created.
func GenerateSampleData(db *gorm.DB, alertCount, reportCount int, userID string) ([]models.Alert, []models.AIReport, error) {
	alerts := SampleAlerts(userID)
	if alertCount >= 0 && alertCount < len(alerts) {
		alerts = alerts[:alertCount]
	}
	reports := SampleAIReports(userID)
	if reportCount >= 0 && reportCount < len(reports) {
		reports = reports[:reportCount]
	}

	if len(alerts) > 0 {
		if err := db.Create(&alerts).Error; err != nil {
			return nil, nil, fmt.Errorf("generating sample alerts: %w", err)
		}
	}
	if len(reports) > 0 {
		if err := db.Create(&reports).Error; err != nil {
			return nil, nil, fmt.Errorf("generating sample AI reports: %w", err)
		}
	}
	return alerts, reports, nil
}
