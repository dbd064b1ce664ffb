package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodwatch/geo"
	"floodwatch/models"
)

type fakeUploader struct {
	mu     sync.Mutex
	failOn string
	calls  []string
}

func (u *fakeUploader) Upload(ctx context.Context, uri string) (string, error) {
	u.mu.Lock()
	u.calls = append(u.calls, uri)
	u.mu.Unlock()
	if uri == u.failOn {
		return "", errors.New("connection reset")
	}
	return "https://cdn.example.com/" + uri, nil
}

type fakeReportAPI struct {
	created []map[string]interface{}
	err     error
}

func (a *fakeReportAPI) CreateReport(ctx context.Context, payload map[string]interface{}) (models.FloodReport, error) {
	if a.err != nil {
		return models.FloodReport{}, a.err
	}
	a.created = append(a.created, payload)
	return models.FloodReport{Description: payload["description"].(string)}, nil
}

func validForm() *ReportForm {
	form := NewReportForm()
	form.Description = "Street is flooded knee high"
	form.Level = models.LevelModerate
	form.Location = "Kampung Baru"
	form.Coordinates = &geo.Coordinate{Latitude: 3.1671, Longitude: 101.7061}
	return form
}

func TestSubmitUploadsThenCreates(t *testing.T) {
	form := validForm()
	form.Images = []string{"a.jpg", "b.jpg", "c.jpg"}

	api := &fakeReportAPI{}
	s := &Submitter{API: api, Uploads: &fakeUploader{}}

	_, err := s.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Len(t, api.created, 1)

	urls := api.created[0]["imageUrls"].([]string)
	assert.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/b.jpg",
		"https://cdn.example.com/c.jpg",
	}, urls, "uploaded URLs keep the picked order")

	assert.Empty(t, form.Description, "form resets after a successful submission")
	assert.Equal(t, 1, form.HouseholdSize.Value())
}

func TestSubmitAbortsWhenAnyUploadFails(t *testing.T) {
	form := validForm()
	form.Images = []string{"a.jpg", "b.jpg", "c.jpg"}

	api := &fakeReportAPI{}
	s := &Submitter{API: api, Uploads: &fakeUploader{failOn: "b.jpg"}}

	_, err := s.Submit(context.Background(), form)
	require.Error(t, err)
	assert.Empty(t, api.created, "no report is created when an upload fails")
	assert.Equal(t, "Street is flooded knee high", form.Description, "form is kept for retry")
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	form := NewReportForm()
	api := &fakeReportAPI{}
	s := &Submitter{API: api, Uploads: &fakeUploader{}}

	_, err := s.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrDescriptionRequired)
	assert.Empty(t, api.created)
}

func TestSubmitKeepsFormWhenCreateFails(t *testing.T) {
	form := validForm()
	api := &fakeReportAPI{err: errors.New("server unavailable")}
	s := &Submitter{API: api, Uploads: &fakeUploader{}}

	_, err := s.Submit(context.Background(), form)
	require.Error(t, err)
	assert.Equal(t, models.LevelModerate, form.Level)
}
