package client

import (
	"fmt"
)

// Platform selects the deep link scheme for turn-by-turn navigation.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// NavigationURL builds the deep link that opens the platform's maps app
// pointed at the destination.
func NavigationURL(platform Platform, latitude, longitude float64) (string, error) {
	switch platform {
	case PlatformIOS:
		return fmt.Sprintf("maps:?q=%f,%f", latitude, longitude), nil
	case PlatformAndroid:
		return fmt.Sprintf("geo:%f,%f?q=%f,%f", latitude, longitude, latitude, longitude), nil
	default:
		return "", fmt.Errorf("navigation is not supported on platform %q", platform)
	}
}
