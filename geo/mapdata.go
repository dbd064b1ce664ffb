// Package geo synthesizes the geospatial map layers (flood zones, shelters,
// incidents, evacuation routes) for a center coordinate and provides the
// shared coordinate helpers. Layer generation is deliberately pure: the same
// center always yields the same geometry, so clients can re-render a cached
// layer without refetching.
package geo

import (
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Coordinate is a geographic point in the JSON shape mobile clients expect.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultLocation is the fallback map center (Kuala Lumpur, Malaysia) used
// when device geolocation is denied or fails.
var DefaultLocation = Coordinate{Latitude: 3.1390, Longitude: 101.6869}

// Valid reports whether the coordinate is within WGS84 bounds.
func (c Coordinate) Valid() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %.6f is out of valid range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %.6f is out of valid range [-180, 180]", c.Longitude)
	}
	return nil
}

// Point converts to an orb.Point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// FloodZone is a polygonal flood risk region synthesized around a center.
type FloodZone struct {
	ID          int          `json:"id"`
	Coordinates []Coordinate `json:"coordinates"`
	RiskLevel   string       `json:"riskLevel"`
	Description string       `json:"description"`
}

// Polygon returns the zone outline as a closed orb polygon.
func (z FloodZone) Polygon() orb.Polygon {
	ring := make(orb.Ring, 0, len(z.Coordinates)+1)
	for _, c := range z.Coordinates {
		ring = append(ring, c.Point())
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// Contains reports whether the point lies inside the zone.
func (z FloodZone) Contains(c Coordinate) bool {
	return planar.PolygonContains(z.Polygon(), c.Point())
}

// Center returns the zone centroid.
func (z FloodZone) Center() Coordinate {
	centroid, _ := planar.CentroidArea(z.Polygon())
	return Coordinate{Latitude: centroid.Lat(), Longitude: centroid.Lon()}
}

// Shelter is a designated evacuation destination.
type Shelter struct {
	ID         int        `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Capacity   int        `json:"capacity"`
	Amenities  []string   `json:"amenities"`
	Contact    string     `json:"contact"`
}

// Incident is a discrete geolocated report of an active flood hazard.
type Incident struct {
	ID          int        `json:"id"`
	Coordinate  Coordinate `json:"coordinate"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	ReportedAt  time.Time  `json:"reportedAt"`
	Status      string     `json:"status"`
}

// RouteDestination is the endpoint of an evacuation route.
type RouteDestination struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// EvacuationRoute is a suggested way out of a flooded area.
type EvacuationRoute struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Status      string           `json:"status"`
	Description string           `json:"description"`
	Duration    string           `json:"duration"`
	Distance    string           `json:"distance"`
	Conditions  string           `json:"conditions"`
	Steps       []string         `json:"route"`
	Destination RouteDestination `json:"destination"`
}

// FloodZones returns the flood risk zones around the given center. Offsets
// are fixed so the output is a pure function of the center coordinate.
func FloodZones(latitude, longitude float64) []FloodZone {
	return []FloodZone{
		{
			ID: 1,
			Coordinates: []Coordinate{
				{latitude - 0.01, longitude - 0.01},
				{latitude - 0.01, longitude + 0.01},
				{latitude + 0.01, longitude + 0.01},
				{latitude + 0.01, longitude - 0.01},
			},
			RiskLevel:   "high",
			Description: "High risk flood zone - Historical flooding area",
		},
		{
			ID: 2,
			Coordinates: []Coordinate{
				{latitude - 0.03, longitude - 0.02},
				{latitude - 0.03, longitude - 0.01},
				{latitude - 0.02, longitude - 0.01},
				{latitude - 0.02, longitude - 0.02},
			},
			RiskLevel:   "moderate",
			Description: "Moderate risk flood zone - Potential for flash flooding",
		},
		{
			ID: 3,
			Coordinates: []Coordinate{
				{latitude + 0.02, longitude + 0.02},
				{latitude + 0.02, longitude + 0.04},
				{latitude + 0.04, longitude + 0.04},
				{latitude + 0.04, longitude + 0.02},
			},
			RiskLevel:   "low",
			Description: "Low risk flood zone - Minor flooding possible during heavy rain",
		},
	}
}

// Shelters returns the evacuation shelters around the given center.
func Shelters(latitude, longitude float64) []Shelter {
	return []Shelter{
		{
			ID:         1,
			Coordinate: Coordinate{latitude + 0.015, longitude + 0.015},
			Name:       "Central High School",
			Address:    "123 Main Street",
			Capacity:   250,
			Amenities:  []string{"Food", "Water", "Medical", "Power"},
			Contact:    "+123-456-7890",
		},
		{
			ID:         2,
			Coordinate: Coordinate{latitude - 0.02, longitude + 0.01},
			Name:       "Community Center",
			Address:    "456 Oak Avenue",
			Capacity:   150,
			Amenities:  []string{"Food", "Water", "Power"},
			Contact:    "+123-456-7891",
		},
		{
			ID:         3,
			Coordinate: Coordinate{latitude + 0.01, longitude - 0.025},
			Name:       "Sports Stadium",
			Address:    "789 Stadium Road",
			Capacity:   500,
			Amenities:  []string{"Food", "Water", "Medical", "Power", "Shower"},
			Contact:    "+123-456-7892",
		},
	}
}

// Incidents returns the active hazard reports around the given center.
// Geometry is deterministic; report times are relative to now.
func Incidents(latitude, longitude float64) []Incident {
	now := time.Now()
	return []Incident{
		{
			ID:          1,
			Coordinate:  Coordinate{latitude - 0.005, longitude + 0.005},
			Description: "Street Flooding",
			Severity:    "high",
			ReportedAt:  now.Add(-1 * time.Hour),
			Status:      "active",
		},
		{
			ID:          2,
			Coordinate:  Coordinate{latitude + 0.008, longitude - 0.003},
			Description: "Storm Drain Overflow",
			Severity:    "moderate",
			ReportedAt:  now.Add(-2 * time.Hour),
			Status:      "active",
		},
		{
			ID:          3,
			Coordinate:  Coordinate{latitude - 0.015, longitude - 0.01},
			Description: "Road Blocked by Debris",
			Severity:    "moderate",
			ReportedAt:  now.Add(-3 * time.Hour),
			Status:      "active",
		},
		{
			ID:          4,
			Coordinate:  Coordinate{latitude + 0.02, longitude + 0.01},
			Description: "Power Line Down",
			Severity:    "high",
			ReportedAt:  now.Add(-4 * time.Hour),
			Status:      "active",
		},
	}
}

// EvacuationRoutes returns the suggested routes out of the area around the
// given center.
func EvacuationRoutes(latitude, longitude float64) []EvacuationRoute {
	return []EvacuationRoute{
		{
			ID:          "1",
			Name:        "Primary Route",
			Status:      "recommended",
			Description: "Via Highland Avenue to Emergency Shelter",
			Duration:    "25 mins",
			Distance:    "5.2 miles",
			Conditions:  "Clear",
			Steps: []string{
				"Head north on Highland Ave",
				"Turn right onto Main St",
				"Continue onto Emergency Center Dr",
			},
			Destination: RouteDestination{
				Name:    "Central Emergency Shelter",
				Address: "1234 Emergency Center Dr",
			},
		},
		{
			ID:          "2",
			Name:        "Alternate Route",
			Status:      "alternative",
			Description: "Via Riverside Drive to Community Center",
			Duration:    "35 mins",
			Distance:    "6.8 miles",
			Conditions:  "Moderate traffic",
			Steps: []string{
				"Head east on Riverside Dr",
				"Turn left onto Bridge Rd",
				"Arrive at Community Center",
			},
			Destination: RouteDestination{
				Name:    "Riverside Community Center",
				Address: "456 Oak Avenue",
			},
		},
	}
}

// Distance returns the great-circle distance between two coordinates in
// kilometers (haversine, R = 6371 km).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
