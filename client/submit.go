package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"floodwatch/models"
)

// Uploader resolves a locally picked image into a stored URL.
type Uploader interface {
	Upload(ctx context.Context, uri string) (string, error)
}

// ReportAPI is the slice of the backend the submitter needs.
type ReportAPI interface {
	CreateReport(ctx context.Context, payload map[string]interface{}) (models.FloodReport, error)
}

// Submitter runs the full report submission flow: validate, upload images,
// create the report, reset the form.
type Submitter struct {
	API     ReportAPI
	Uploads Uploader
}

// Submit validates the form and submits it. Images upload concurrently;
// if any upload fails the whole submission is abandoned and no report is
// created. The form is reset only on success.
func (s *Submitter) Submit(ctx context.Context, form *ReportForm) (models.FloodReport, error) {
	if err := form.Validate(); err != nil {
		return models.FloodReport{}, err
	}

	urls := make([]string, len(form.Images))
	g, gctx := errgroup.WithContext(ctx)
	for i, uri := range form.Images {
		i, uri := i, uri
		g.Go(func() error {
			url, err := s.Uploads.Upload(gctx, uri)
			if err != nil {
				return fmt.Errorf("uploading image %d: %w", i+1, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.FloodReport{}, err
	}

	report, err := s.API.CreateReport(ctx, form.payload(urls))
	if err != nil {
		return models.FloodReport{}, err
	}

	form.Reset()
	return report, nil
}
