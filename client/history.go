package client

import (
	"context"

	"floodwatch/models"
)

// HistoryAPI is the slice of the backend the history screen needs.
type HistoryAPI interface {
	GetUserReports(ctx context.Context) ([]models.FloodReport, error)
}

// History is the report history view model: the user's reports plus which
// entry is expanded.
type History struct {
	API HistoryAPI

	reports  []models.FloodReport
	expanded string
	loading  bool
}

// Load fetches the user's reports. Also used for pull-to-refresh.
func (h *History) Load(ctx context.Context) error {
	h.loading = true
	defer func() { h.loading = false }()

	reports, err := h.API.GetUserReports(ctx)
	if err != nil {
		return err
	}
	h.reports = reports
	return nil
}

// Reports returns the loaded reports, newest first as the API serves them.
func (h *History) Reports() []models.FloodReport {
	return h.reports
}

// IsLoading reports whether a fetch is in flight.
func (h *History) IsLoading() bool { return h.loading }

// ToggleExpand expands the given report, collapsing it when tapped again.
func (h *History) ToggleExpand(reportID string) {
	if h.expanded == reportID {
		h.expanded = ""
		return
	}
	h.expanded = reportID
}

// Expanded returns the id of the expanded report, or "" when all are
// collapsed.
func (h *History) Expanded() string { return h.expanded }
