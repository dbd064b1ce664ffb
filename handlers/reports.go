package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"

	"floodwatch/config"
	"floodwatch/middleware"
	"floodwatch/models"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

type createReportReq struct {
	Description string   `json:"description"`
	Level       string   `json:"level"`
	Location    string   `json:"location"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	ImageURLs   []string `json:"imageUrls"`

	HouseholdSize     int  `json:"household_size"`
	ChildrenUnder5    int  `json:"children_under_5"`
	ElderlyMembers    int  `json:"elderly_members"`
	DisabledMembers   int  `json:"disabled_bedridden_members"`
	MedicalConditions bool `json:"has_medical_conditions"`
	PetsLivestock     int  `json:"pets_livestock"`
}

// validate mirrors the client-side rules: first failing rule wins and
// exactly one message is returned.
func (req *createReportReq) validate() string {
	if req.Description == "" {
		return "Please provide a description"
	}
	if !models.ValidLevel(req.Level) {
		return "Please select a flood level"
	}
	if req.Location == "" || (req.Latitude == 0 && req.Longitude == 0) {
		return "Please provide a location"
	}
	return ""
}

// CreateFloodReport stores a new report for the bearer user. Status always
// starts as pending regardless of what the client sends.
func CreateFloodReport(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid user identity")
		return
	}

	var req createReportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := req.validate(); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	if req.HouseholdSize < 1 {
		req.HouseholdSize = 1
	}
	for _, n := range []*int{&req.ChildrenUnder5, &req.ElderlyMembers, &req.DisabledMembers, &req.PetsLivestock} {
		if *n < 0 {
			*n = 0
		}
	}

	report := models.FloodReport{
		UserID:            userID,
		Description:       req.Description,
		Level:             req.Level,
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		ImageURLs:         req.ImageURLs,
		HouseholdSize:     req.HouseholdSize,
		ChildrenUnder5:    req.ChildrenUnder5,
		ElderlyMembers:    req.ElderlyMembers,
		DisabledMembers:   req.DisabledMembers,
		MedicalConditions: req.MedicalConditions,
		PetsLivestock:     req.PetsLivestock,
		Status:            models.StatusPending,
		Updates:           datatypes.JSON([]byte("[]")),
	}
	if err := config.DB.Create(&report).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": report})
}

// GetAllReports returns every report, newest first.
func GetAllReports(w http.ResponseWriter, r *http.Request) {
	var reports []models.FloodReport
	if err := config.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": reports})
}

// GetUserReports returns the bearer user's reports, newest first.
func GetUserReports(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var reports []models.FloodReport
	if err := config.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": reports})
}

// GetFloodReport returns a single report by id.
func GetFloodReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var report models.FloodReport
	if err := config.DB.First(&report, "id = ?", id).Error; err != nil {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": report})
}

type statusUpdateReq struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpdateReportStatus is the review endpoint: it moves a report to verified
// or rejected and appends an entry to its update trail. Reporters cannot
// call this; status is service-owned.
func UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req statusUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Status != models.StatusVerified && req.Status != models.StatusRejected && req.Status != models.StatusPending {
		writeMessage(w, http.StatusBadRequest, "invalid status")
		return
	}

	var report models.FloodReport
	if err := config.DB.First(&report, "id = ?", id).Error; err != nil {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}

	var updates []models.ReportUpdate
	if len(report.Updates) > 0 {
		if err := json.Unmarshal(report.Updates, &updates); err != nil {
			updates = nil
		}
	}
	if req.Message != "" {
		updates = append(updates, models.ReportUpdate{
			Time:    models.JSONTime(time.Now()),
			Message: req.Message,
		})
	}
	raw, err := json.Marshal(updates)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "encoding updates: "+err.Error())
		return
	}

	report.Status = req.Status
	report.Updates = datatypes.JSON(raw)
	if err := config.DB.Save(&report).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": report})
}
