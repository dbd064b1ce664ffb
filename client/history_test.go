package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodwatch/models"
)

type fakeHistoryAPI struct {
	reports []models.FloodReport
	err     error
	calls   int
}

func (a *fakeHistoryAPI) GetUserReports(ctx context.Context) ([]models.FloodReport, error) {
	a.calls++
	return a.reports, a.err
}

func TestHistoryLoadAndRefresh(t *testing.T) {
	api := &fakeHistoryAPI{reports: []models.FloodReport{
		{Description: "Water at the doorstep", Level: models.LevelSevere},
	}}
	h := &History{API: api}

	require.NoError(t, h.Load(context.Background()))
	require.Len(t, h.Reports(), 1)
	assert.Equal(t, 1, api.calls)

	// Pull-to-refresh re-issues the same fetch and picks up new entries.
	api.reports = append(api.reports, models.FloodReport{Description: "Drain cleared", Level: models.LevelMinor})
	require.NoError(t, h.Load(context.Background()))
	assert.Len(t, h.Reports(), 2)
	assert.Equal(t, 2, api.calls)
	assert.False(t, h.IsLoading())
}

func TestHistoryLoadErrorKeepsReports(t *testing.T) {
	api := &fakeHistoryAPI{reports: []models.FloodReport{{Description: "Flooded lane"}}}
	h := &History{API: api}
	require.NoError(t, h.Load(context.Background()))

	api.err = errors.New("server unavailable")
	require.Error(t, h.Load(context.Background()))
	assert.Len(t, h.Reports(), 1, "a failed refresh keeps the last list")
	assert.False(t, h.IsLoading())
}

func TestHistoryToggleExpand(t *testing.T) {
	h := &History{}
	assert.Empty(t, h.Expanded())

	h.ToggleExpand("report-a")
	assert.Equal(t, "report-a", h.Expanded())

	// Tapping another card switches the single expanded slot.
	h.ToggleExpand("report-b")
	assert.Equal(t, "report-b", h.Expanded())

	// Tapping the expanded card collapses it.
	h.ToggleExpand("report-b")
	assert.Empty(t, h.Expanded())
}
