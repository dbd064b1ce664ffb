package client

import (
	"context"

	"floodwatch/geo"
)

// LocationProvider abstracts device geolocation.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (geo.Coordinate, error)
}

// ResolveLocation asks the provider for the current position and falls
// back to the default map center when the provider is missing, denied, or
// fails.
func ResolveLocation(ctx context.Context, p LocationProvider) geo.Coordinate {
	if p == nil {
		return geo.DefaultLocation
	}
	loc, err := p.CurrentLocation(ctx)
	if err != nil {
		return geo.DefaultLocation
	}
	if err := loc.Valid(); err != nil {
		return geo.DefaultLocation
	}
	return loc
}
