package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodwatch/geo"
	"floodwatch/models"
)

type countingFeed struct {
	alertCalls  int32
	reportCalls int32
}

func (f *countingFeed) AllAlerts(ctx context.Context) ([]models.Alert, error) {
	atomic.AddInt32(&f.alertCalls, 1)
	return []models.Alert{{Title: "Flash Flood Warning"}}, nil
}

func (f *countingFeed) UserAlerts(ctx context.Context) ([]models.Alert, error) {
	return f.AllAlerts(ctx)
}

func (f *countingFeed) AllAIReports(ctx context.Context) ([]models.AIReport, error) {
	atomic.AddInt32(&f.reportCalls, 1)
	return []models.AIReport{{Title: "Flood Risk Analysis: Klang Valley"}}, nil
}

func (f *countingFeed) UserAIReports(ctx context.Context) ([]models.AIReport, error) {
	return f.AllAIReports(ctx)
}

type fixedLocation struct {
	loc geo.Coordinate
	err error
}

func (p *fixedLocation) CurrentLocation(ctx context.Context) (geo.Coordinate, error) {
	return p.loc, p.err
}

func TestInitFallsBackToDefaultCenter(t *testing.T) {
	for name, provider := range map[string]LocationProvider{
		"no provider":      nil,
		"permission error": &fixedLocation{err: errors.New("permission denied")},
		"invalid position": &fixedLocation{loc: geo.Coordinate{Latitude: 200}},
	} {
		t.Run(name, func(t *testing.T) {
			m := NewMapController(&countingFeed{}, provider)
			require.NoError(t, m.Init(context.Background()))
			assert.Equal(t, geo.DefaultLocation, m.Region())
		})
	}
}

func TestInitUsesDevicePosition(t *testing.T) {
	here := geo.Coordinate{Latitude: 3.1073, Longitude: 101.6068}
	m := NewMapController(&countingFeed{}, &fixedLocation{loc: here})
	require.NoError(t, m.Init(context.Background()))
	assert.Equal(t, here, m.Region())
}

func TestToggleLayerDoesNotRefetch(t *testing.T) {
	feed := &countingFeed{}
	m := NewMapController(feed, nil)
	require.NoError(t, m.Init(context.Background()))

	require.Equal(t, int32(1), atomic.LoadInt32(&feed.alertCalls))
	require.NotEmpty(t, m.Alerts())
	require.NotEmpty(t, m.FloodZones())

	m.ToggleLayer(LayerAlerts)
	assert.Nil(t, m.Alerts(), "hidden layer renders nothing")
	assert.NotEmpty(t, m.FloodZones(), "other layers unaffected")

	m.ToggleLayer(LayerAlerts)
	assert.NotEmpty(t, m.Alerts(), "data survives a hide/show cycle")

	assert.Equal(t, int32(1), atomic.LoadInt32(&feed.alertCalls), "toggling never refetches")
	assert.Equal(t, int32(1), atomic.LoadInt32(&feed.reportCalls))
}

func TestSelectionIsExclusive(t *testing.T) {
	m := NewMapController(&countingFeed{}, nil)
	require.NoError(t, m.Init(context.Background()))

	m.SelectShelter(m.Shelters()[0])
	require.NotNil(t, m.Selection().Shelter)

	m.SelectIncident(m.Incidents()[0])
	sel := m.Selection()
	assert.Nil(t, sel.Shelter, "selecting an incident closes the shelter panel")
	require.NotNil(t, sel.Incident)

	m.SelectZone(m.FloodZones()[0])
	sel = m.Selection()
	assert.Nil(t, sel.Incident)
	require.NotNil(t, sel.Zone)

	m.SelectAlert(m.Alerts()[0])
	sel = m.Selection()
	assert.Nil(t, sel.Zone)
	require.NotNil(t, sel.Alert)

	m.SelectAIReport(m.AIReports()[0])
	sel = m.Selection()
	assert.Nil(t, sel.Alert)
	require.NotNil(t, sel.AIReport)

	m.ClearSelection()
	assert.True(t, m.Selection().Empty())
}

// stallFirstFeed blocks the first fetch until the gate opens, so a test
// can interleave a second load under the first.
type stallFirstFeed struct {
	countingFeed
	gate    chan struct{}
	started chan struct{}
	once    sync.Once
}

func (f *stallFirstFeed) AllAlerts(ctx context.Context) ([]models.Alert, error) {
	first := false
	f.once.Do(func() { first = true })
	if first {
		close(f.started)
		<-f.gate
	}
	return f.countingFeed.AllAlerts(ctx)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	feed := &stallFirstFeed{
		gate:    make(chan struct{}),
		started: make(chan struct{}),
	}
	m := NewMapController(feed, nil)

	first := geo.Coordinate{Latitude: 3.1390, Longitude: 101.6869}
	second := geo.Coordinate{Latitude: 5.4141, Longitude: 100.3288}

	done := make(chan error, 1)
	go func() { done <- m.Load(context.Background(), first) }()

	select {
	case <-feed.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first load never started fetching")
	}

	require.NoError(t, m.Load(context.Background(), second))
	close(feed.gate)
	require.NoError(t, <-done)

	assert.Equal(t, second, m.Region())
	zones := m.FloodZones()
	require.NotEmpty(t, zones)
	assert.InDelta(t, second.Latitude-0.01, zones[0].Coordinates[0].Latitude, 1e-9,
		"layers belong to the most recent center")
	assert.False(t, m.IsLoading())
}

func TestLoadRejectsInvalidCenter(t *testing.T) {
	m := NewMapController(&countingFeed{}, nil)
	err := m.Load(context.Background(), geo.Coordinate{Latitude: 91})
	assert.Error(t, err)
}

type downFeed struct{}

func (downFeed) AllAlerts(ctx context.Context) ([]models.Alert, error) {
	return nil, errors.New("feed unavailable")
}

func (downFeed) UserAlerts(ctx context.Context) ([]models.Alert, error) {
	return nil, errors.New("feed unavailable")
}

func (downFeed) AllAIReports(ctx context.Context) ([]models.AIReport, error) {
	return nil, errors.New("feed unavailable")
}

func (downFeed) UserAIReports(ctx context.Context) ([]models.AIReport, error) {
	return nil, errors.New("feed unavailable")
}

func TestFailedLoadKeepsRegionAndLayers(t *testing.T) {
	m := NewMapController(&countingFeed{}, nil)
	require.NoError(t, m.Init(context.Background()))
	before := m.FloodZones()

	m.feeds = downFeed{}
	err := m.Load(context.Background(), geo.Coordinate{Latitude: 5.4141, Longitude: 100.3288})
	require.Error(t, err)

	assert.Equal(t, geo.DefaultLocation, m.Region(), "a failed load never moves the center")
	assert.Equal(t, before, m.FloodZones(), "the old geometry stays with the old center")
	assert.False(t, m.IsLoading())
}
