package client

import (
	"context"
	"time"

	"floodwatch/config"
	"floodwatch/models"
)

// AlertsService is where the app fetches its alert and risk assessment
// feeds from. HTTPAlertsService talks to the backend; FixtureAlertsService
// serves the bundled demo feed for offline and demo builds.
type AlertsService interface {
	AllAlerts(ctx context.Context) ([]models.Alert, error)
	UserAlerts(ctx context.Context) ([]models.Alert, error)
	AllAIReports(ctx context.Context) ([]models.AIReport, error)
	UserAIReports(ctx context.Context) ([]models.AIReport, error)
}

// HTTPAlertsService backs the feeds with the live API.
type HTTPAlertsService struct {
	API *Client
}

func (s *HTTPAlertsService) AllAlerts(ctx context.Context) ([]models.Alert, error) {
	return s.API.GetAllAlerts(ctx)
}

func (s *HTTPAlertsService) UserAlerts(ctx context.Context) ([]models.Alert, error) {
	return s.API.GetUserAlerts(ctx)
}

func (s *HTTPAlertsService) AllAIReports(ctx context.Context) ([]models.AIReport, error) {
	return s.API.GetAllAIReports(ctx)
}

func (s *HTTPAlertsService) UserAIReports(ctx context.Context) ([]models.AIReport, error) {
	return s.API.GetUserAIReports(ctx)
}

// FixtureAlertsService serves the canonical demo feed after a simulated
// network delay.
type FixtureAlertsService struct {
	Delay time.Duration
}

// NewFixtureAlertsService returns a fixture feed with the demo delay used
// by the app's offline mode.
func NewFixtureAlertsService() *FixtureAlertsService {
	return &FixtureAlertsService{Delay: 800 * time.Millisecond}
}

func (s *FixtureAlertsService) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *FixtureAlertsService) AllAlerts(ctx context.Context) ([]models.Alert, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return config.SampleAlerts("system"), nil
}

func (s *FixtureAlertsService) UserAlerts(ctx context.Context) ([]models.Alert, error) {
	return s.AllAlerts(ctx)
}

func (s *FixtureAlertsService) AllAIReports(ctx context.Context) ([]models.AIReport, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return config.SampleAIReports("system"), nil
}

func (s *FixtureAlertsService) UserAIReports(ctx context.Context) ([]models.AIReport, error) {
	return s.AllAIReports(ctx)
}
