package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationURL(t *testing.T) {
	url, err := NavigationURL(PlatformIOS, 3.1390, 101.6869)
	assert.NoError(t, err)
	assert.Equal(t, "maps:?q=3.139000,101.686900", url)

	url, err = NavigationURL(PlatformAndroid, 3.1390, 101.6869)
	assert.NoError(t, err)
	assert.Equal(t, "geo:3.139000,101.686900?q=3.139000,101.686900", url)

	_, err = NavigationURL("web", 3.1390, 101.6869)
	assert.Error(t, err)
}
