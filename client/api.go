// Package client is the Go SDK for the floodwatch API. It carries the
// client-side orchestration the mobile apps share: authenticated requests,
// the report form and submission flow, the map layer controller, and the
// report history view model.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"floodwatch/models"
)

// TokenSource supplies a fresh bearer token per request.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource backed by a fixed string.
type StaticToken string

func (t StaticToken) Token() (string, error) { return string(t), nil }

// APIError is a non-2xx response decoded into its server-provided parts.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// Client talks to the floodwatch backend.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Tokens     TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Tokens:     tokens,
	}
}

// SetToken replaces the token source, typically after login.
func (c *Client) SetToken(token string) {
	c.Tokens = StaticToken(token)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}
	if c.Tokens != nil {
		token, err := c.Tokens.Token()
		if err != nil {
			return fmt.Errorf("getting auth token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Code = payload.Error.Code
	}
	return apiErr
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// CreateReport submits a flood report payload.
func (c *Client) CreateReport(ctx context.Context, payload map[string]interface{}) (models.FloodReport, error) {
	var env dataEnvelope[models.FloodReport]
	err := c.do(ctx, http.MethodPost, "/api/v1/report", payload, &env)
	return env.Data, err
}

// GetAllReports fetches every flood report.
func (c *Client) GetAllReports(ctx context.Context) ([]models.FloodReport, error) {
	var env dataEnvelope[[]models.FloodReport]
	err := c.do(ctx, http.MethodGet, "/api/v1/reports", nil, &env)
	return env.Data, err
}

// GetUserReports fetches the bearer user's flood reports.
func (c *Client) GetUserReports(ctx context.Context) ([]models.FloodReport, error) {
	var env dataEnvelope[[]models.FloodReport]
	err := c.do(ctx, http.MethodGet, "/api/v1/reports/user", nil, &env)
	return env.Data, err
}

// GetAllAlerts fetches the global alert feed.
func (c *Client) GetAllAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := c.do(ctx, http.MethodGet, "/api/v1/alerts", nil, &alerts)
	return alerts, err
}

// GetUserAlerts fetches alerts tagged with the bearer user's id.
func (c *Client) GetUserAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := c.do(ctx, http.MethodGet, "/api/v1/alerts/user", nil, &alerts)
	return alerts, err
}

// GetAllAIReports fetches the AI risk assessment feed.
func (c *Client) GetAllAIReports(ctx context.Context) ([]models.AIReport, error) {
	var reports []models.AIReport
	err := c.do(ctx, http.MethodGet, "/api/v1/ai-reports", nil, &reports)
	return reports, err
}

// GetUserAIReports fetches AI reports tagged with the bearer user's id.
func (c *Client) GetUserAIReports(ctx context.Context) ([]models.AIReport, error) {
	var reports []models.AIReport
	err := c.do(ctx, http.MethodGet, "/api/v1/ai-reports/user", nil, &reports)
	return reports, err
}

// UploadImage uploads one report photo as image/jpeg and returns the
// stored URL.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="file"; filename=%q`, filename)}
	header["Content-Type"] = []string{"image/jpeg"}
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1/files/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}
	if c.Tokens != nil {
		token, err := c.Tokens.Token()
		if err != nil {
			return "", fmt.Errorf("getting auth token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.URL, nil
}
