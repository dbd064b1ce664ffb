package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"floodwatch/handlers"
	"floodwatch/middleware"
)

// RegisterRoutes sets up all application routes. The returned hub must be
// running (hub.Run) before alerts are created.
func RegisterRoutes() (http.Handler, *handlers.AlertHub) {
	r := mux.NewRouter()
	hub := handlers.NewAlertHub()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/token", handlers.GetCurrentUser).Methods("GET")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.SecurityMiddleware)
	api.Use(middleware.JWTMiddleware)

	// Profile
	api.HandleFunc("/profile", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/profile", handlers.UpdateProfile).Methods("PUT")

	// Flood reports
	api.HandleFunc("/report", handlers.CreateFloodReport).Methods("POST")
	api.HandleFunc("/reports", handlers.GetAllReports).Methods("GET")
	api.HandleFunc("/reports/user", handlers.GetUserReports).Methods("GET")
	api.HandleFunc("/reports/export", handlers.ExportReportsToExcel).Methods("GET")
	api.HandleFunc("/reports/{id}", handlers.GetFloodReport).Methods("GET")

	// Alert and AI report feeds
	api.HandleFunc("/alerts", handlers.GetAllAlerts).Methods("GET")
	api.HandleFunc("/alerts/user", handlers.GetUserAlerts).Methods("GET")
	api.HandleFunc("/ai-reports", handlers.GetAllAIReports).Methods("GET")
	api.HandleFunc("/ai-reports/user", handlers.GetUserAIReports).Methods("GET")
	api.HandleFunc("/generate-sample-data", handlers.GenerateSampleData).Methods("POST")

	// Map layers and geocoding
	api.HandleFunc("/map/layers", handlers.GetMapLayers).Methods("GET")
	api.HandleFunc("/geocode/search", handlers.GeocodeSearch).Methods("GET")
	api.HandleFunc("/geocode/reverse", handlers.ReverseGeocode).Methods("GET")

	// File uploads
	api.HandleFunc("/files/upload", handlers.UploadFileHandler).Methods("POST")

	// Live alert stream (token validated during the upgrade request)
	api.HandleFunc("/alerts/stream", hub.StreamAlerts).Methods("GET")

	// =====================================================
	// Admin Routes
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/alerts", hub.CreateAlert).Methods("POST")
	admin.HandleFunc("/reports/{id}/status", handlers.UpdateReportStatus).Methods("PUT")

	return r, hub
}
