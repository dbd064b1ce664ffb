package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"floodwatch/config"
	"floodwatch/middleware"
	"floodwatch/models"
)

// GetAllAlerts returns the global alert feed as a bare array, newest
// first. The feed is location-independent.
func GetAllAlerts(w http.ResponseWriter, r *http.Request) {
	var alerts []models.Alert
	if err := config.DB.Where("is_active = ?", true).Order("timestamp DESC").Find(&alerts).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// GetUserAlerts returns alerts tagged with the bearer user's id.
func GetUserAlerts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var alerts []models.Alert
	if err := config.DB.Where("user_id = ? AND is_active = ?", userID, true).Order("timestamp DESC").Find(&alerts).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// GetAllAIReports returns the AI risk assessment feed as a bare array,
// newest first.
func GetAllAIReports(w http.ResponseWriter, r *http.Request) {
	var reports []models.AIReport
	if err := config.DB.Order("timestamp DESC").Find(&reports).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// GetUserAIReports returns AI reports tagged with the bearer user's id.
func GetUserAIReports(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var reports []models.AIReport
	if err := config.DB.Where("user_id = ?", userID).Order("timestamp DESC").Find(&reports).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

type generateSampleReq struct {
	AlertCount  int    `json:"alertCount"`
	ReportCount int    `json:"reportCount"`
	UserID      string `json:"userId"`
}

// GenerateSampleData seeds demo alerts and AI reports on demand. Counts
// default to 5; userId defaults to "system".
func GenerateSampleData(w http.ResponseWriter, r *http.Request) {
	req := generateSampleReq{AlertCount: 5, ReportCount: 5, UserID: "system"}
	if r.Body != nil {
		// Partial bodies are fine; defaults cover missing fields.
		json.NewDecoder(r.Body).Decode(&req)
	}
	if req.UserID == "" {
		req.UserID = "system"
	}

	alerts, reports, err := config.GenerateSampleData(config.DB, req.AlertCount, req.ReportCount, req.UserID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Generated %d alerts and %d AI reports for user %s", len(alerts), len(reports), req.UserID),
		"data": map[string]interface{}{
			"alerts":  alerts,
			"reports": reports,
		},
	})
}
