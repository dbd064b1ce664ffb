package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// UnknownLocation is returned whenever an address cannot be resolved;
// callers render it as-is instead of failing the surrounding operation.
const UnknownLocation = "Unknown location"

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// Geocoder resolves addresses against a Nominatim-compatible endpoint.
type Geocoder struct {
	baseURL string
	client  *http.Client
}

var (
	geocoder     *Geocoder
	geocoderOnce sync.Once
)

// DefaultGeocoder returns the singleton geocoder, configured from
// GEOCODER_URL when set.
func DefaultGeocoder() *Geocoder {
	geocoderOnce.Do(func() {
		base := os.Getenv("GEOCODER_URL")
		if base == "" {
			base = defaultNominatimURL
		}
		geocoder = NewGeocoder(base)
	})
	return geocoder
}

func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimAddress struct {
	Road    string `json:"road"`
	Suburb  string `json:"suburb"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type nominatimResult struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
}

// ReverseGeocode returns a short human-readable address for a coordinate.
// Any failure degrades to UnknownLocation rather than an error; the caller
// never blocks a report on a missing address.
func (g *Geocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(latitude, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', 6, 64))
	q.Set("format", "jsonv2")

	var result nominatimResult
	if err := g.get(ctx, "/reverse", q, &result); err != nil {
		return UnknownLocation
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{result.Address.Road, result.Address.Suburb, result.Address.City, result.Address.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		if result.DisplayName != "" {
			return result.DisplayName
		}
		return UnknownLocation
	}
	return strings.Join(parts, ", ")
}

// Search geocodes a free-form query to candidate coordinates. Failures
// degrade to an empty result set.
func (g *Geocoder) Search(ctx context.Context, query string) []Coordinate {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("limit", "5")

	var results []nominatimResult
	if err := g.get(ctx, "/search", q, &results); err != nil {
		return nil
	}

	coords := make([]Coordinate, 0, len(results))
	for _, r := range results {
		lat, err1 := strconv.ParseFloat(r.Lat, 64)
		lon, err2 := strconv.ParseFloat(r.Lon, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		coords = append(coords, Coordinate{Latitude: lat, Longitude: lon})
	}
	return coords
}

func (g *Geocoder) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "floodwatch/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
