package client

import (
	"context"
	"sync"

	"floodwatch/geo"
	"floodwatch/models"
)

// Layer identifies one toggleable map overlay.
type Layer string

const (
	LayerFloodZones   Layer = "flood-zones"
	LayerShelters     Layer = "shelters"
	LayerIncidents    Layer = "incidents"
	LayerUserLocation Layer = "user-location"
	LayerAlerts       Layer = "alerts"
	LayerAIReports    Layer = "ai-reports"
)

// Selection is the currently opened map detail panel. At most one field is
// non-nil at a time.
type Selection struct {
	Zone     *geo.FloodZone
	Shelter  *geo.Shelter
	Incident *geo.Incident
	Alert    *models.Alert
	AIReport *models.AIReport
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Zone == nil && s.Shelter == nil && s.Incident == nil &&
		s.Alert == nil && s.AIReport == nil
}

// MapController holds the map screen state: the region, the loaded layer
// data, per-layer visibility, and the detail selection. Toggling a layer
// only flips visibility; the data stays loaded.
type MapController struct {
	feeds    AlertsService
	location LocationProvider

	mu         sync.Mutex
	region     geo.Coordinate
	layers     map[Layer]bool
	loading    bool
	generation uint64

	zones     []geo.FloodZone
	shelters  []geo.Shelter
	incidents []geo.Incident
	routes    []geo.EvacuationRoute
	alerts    []models.Alert
	aiReports []models.AIReport

	selection Selection
}

// NewMapController returns a controller centered on the default location
// with every layer visible. Call Init to acquire the device position and
// load the first set of layers.
func NewMapController(feeds AlertsService, location LocationProvider) *MapController {
	return &MapController{
		feeds:    feeds,
		location: location,
		region:   geo.DefaultLocation,
		layers: map[Layer]bool{
			LayerFloodZones:   true,
			LayerShelters:     true,
			LayerIncidents:    true,
			LayerUserLocation: true,
			LayerAlerts:       true,
			LayerAIReports:    true,
		},
	}
}

// Init centers the map on the device position (or the default location
// when unavailable) and loads the layers.
func (m *MapController) Init(ctx context.Context) error {
	return m.Load(ctx, ResolveLocation(ctx, m.location))
}

// Load recenters the map and rebuilds every layer around the new center.
// Concurrent loads race by design (search while a load is in flight); only
// the most recently started load is allowed to install its results.
func (m *MapController) Load(ctx context.Context, center geo.Coordinate) error {
	if err := center.Valid(); err != nil {
		return err
	}

	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.loading = true
	m.mu.Unlock()

	zones := geo.FloodZones(center.Latitude, center.Longitude)
	shelters := geo.Shelters(center.Latitude, center.Longitude)
	incidents := geo.Incidents(center.Latitude, center.Longitude)
	routes := geo.EvacuationRoutes(center.Latitude, center.Longitude)

	alerts, err := m.feeds.AllAlerts(ctx)
	if err != nil {
		m.finishLoad(gen)
		return err
	}
	aiReports, err := m.feeds.AllAIReports(ctx)
	if err != nil {
		m.finishLoad(gen)
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		// A newer load started while this one was fetching; drop it.
		return nil
	}
	// The region moves together with its layers, so a failed fetch never
	// leaves the old geometry under a new center.
	m.region = center
	m.zones = zones
	m.shelters = shelters
	m.incidents = incidents
	m.routes = routes
	m.alerts = alerts
	m.aiReports = aiReports
	m.loading = false
	return nil
}

func (m *MapController) finishLoad(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen == m.generation {
		m.loading = false
	}
}

// Search recenters on a picked search result and reloads.
func (m *MapController) Search(ctx context.Context, result geo.Coordinate) error {
	return m.Load(ctx, result)
}

// UseCurrentLocation recenters on the device position and reloads. The
// region is left untouched when the position cannot be acquired.
func (m *MapController) UseCurrentLocation(ctx context.Context) error {
	if m.location == nil {
		return m.Load(ctx, geo.DefaultLocation)
	}
	loc, err := m.location.CurrentLocation(ctx)
	if err != nil {
		return err
	}
	return m.Load(ctx, loc)
}

// Region returns the current map center.
func (m *MapController) Region() geo.Coordinate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.region
}

// IsLoading reports whether a layer load is in flight.
func (m *MapController) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// ToggleLayer flips a layer's visibility without refetching its data.
func (m *MapController) ToggleLayer(l Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layers[l] = !m.layers[l]
}

// LayerVisible reports whether a layer is currently shown.
func (m *MapController) LayerVisible(l Layer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.layers[l]
}

// FloodZones returns the loaded flood zones, or nil when the layer is
// hidden.
func (m *MapController) FloodZones() []geo.FloodZone {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.layers[LayerFloodZones] {
		return nil
	}
	return m.zones
}

// Shelters returns the loaded shelters, or nil when the layer is hidden.
func (m *MapController) Shelters() []geo.Shelter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.layers[LayerShelters] {
		return nil
	}
	return m.shelters
}

// Incidents returns the loaded incidents, or nil when the layer is hidden.
func (m *MapController) Incidents() []geo.Incident {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.layers[LayerIncidents] {
		return nil
	}
	return m.incidents
}

// EvacuationRoutes returns the loaded routes. Routes have no layer toggle.
func (m *MapController) EvacuationRoutes() []geo.EvacuationRoute {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.routes
}

// Alerts returns the loaded alerts, or nil when the layer is hidden.
func (m *MapController) Alerts() []models.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.layers[LayerAlerts] {
		return nil
	}
	return m.alerts
}

// AIReports returns the loaded AI reports, or nil when the layer is
// hidden.
func (m *MapController) AIReports() []models.AIReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.layers[LayerAIReports] {
		return nil
	}
	return m.aiReports
}

// Selection returns the open detail panel.
func (m *MapController) Selection() Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection
}

// SelectZone opens the flood zone panel, closing any other panel.
func (m *MapController) SelectZone(z geo.FloodZone) {
	m.setSelection(Selection{Zone: &z})
}

// SelectShelter opens the shelter panel, closing any other panel.
func (m *MapController) SelectShelter(s geo.Shelter) {
	m.setSelection(Selection{Shelter: &s})
}

// SelectIncident opens the incident panel, closing any other panel.
func (m *MapController) SelectIncident(i geo.Incident) {
	m.setSelection(Selection{Incident: &i})
}

// SelectAlert opens the alert panel, closing any other panel.
func (m *MapController) SelectAlert(a models.Alert) {
	m.setSelection(Selection{Alert: &a})
}

// SelectAIReport opens the AI report panel, closing any other panel.
func (m *MapController) SelectAIReport(r models.AIReport) {
	m.setSelection(Selection{AIReport: &r})
}

// ClearSelection closes the open panel.
func (m *MapController) ClearSelection() {
	m.setSelection(Selection{})
}

func (m *MapController) setSelection(s Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = s
}
