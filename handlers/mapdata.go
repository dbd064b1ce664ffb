package handlers

import (
	"net/http"
	"strconv"

	"floodwatch/config"
	"floodwatch/geo"
	"floodwatch/models"
)

// MapLayersResponse bundles everything the map screen renders for one
// center point: the synthesized local layers plus the two global feeds.
type MapLayersResponse struct {
	Center           geo.Coordinate        `json:"center"`
	FloodZones       []geo.FloodZone       `json:"floodZones"`
	Shelters         []geo.Shelter         `json:"shelters"`
	Incidents        []geo.Incident        `json:"incidents"`
	EvacuationRoutes []geo.EvacuationRoute `json:"evacuationRoutes"`
	Alerts           []models.Alert        `json:"alerts"`
	AIReports        []models.AIReport     `json:"aiReports"`
}

// GetMapLayers serves the full layer bundle for ?lat=&lng=. Missing or
// invalid coordinates fall back to the default center.
func GetMapLayers(w http.ResponseWriter, r *http.Request) {
	center := geo.DefaultLocation
	if latStr, lngStr := r.URL.Query().Get("lat"), r.URL.Query().Get("lng"); latStr != "" && lngStr != "" {
		lat, err1 := strconv.ParseFloat(latStr, 64)
		lng, err2 := strconv.ParseFloat(lngStr, 64)
		if err1 == nil && err2 == nil {
			c := geo.Coordinate{Latitude: lat, Longitude: lng}
			if c.Valid() == nil {
				center = c
			}
		}
	}

	resp := MapLayersResponse{
		Center:           center,
		FloodZones:       geo.FloodZones(center.Latitude, center.Longitude),
		Shelters:         geo.Shelters(center.Latitude, center.Longitude),
		Incidents:        geo.Incidents(center.Latitude, center.Longitude),
		EvacuationRoutes: geo.EvacuationRoutes(center.Latitude, center.Longitude),
	}

	if err := config.DB.Where("is_active = ?", true).Order("timestamp DESC").Find(&resp.Alerts).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	if err := config.DB.Order("timestamp DESC").Find(&resp.AIReports).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GeocodeSearch resolves a free-form place query to coordinates.
func GeocodeSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeMessage(w, http.StatusBadRequest, "q parameter required")
		return
	}
	coords := geo.DefaultGeocoder().Search(r.Context(), query)
	writeJSON(w, http.StatusOK, coords)
}

// ReverseGeocode resolves ?lat=&lng= to a short address string. Failures
// degrade to "Unknown location" with a 200 so clients never branch on it.
func ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, err2 := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err1 != nil || err2 != nil {
		writeMessage(w, http.StatusBadRequest, "lat and lng parameters required")
		return
	}
	address := geo.DefaultGeocoder().ReverseGeocode(r.Context(), lat, lng)
	writeJSON(w, http.StatusOK, map[string]string{"address": address})
}
