// HTTP client for the dashboard status API (GET /services, POST /services/{id}/restart)
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

var _ StatusAPI = (*StatusClient)(nil)

// StatusClient implements [StatusAPI] over HTTP.
type StatusClient struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// NewStatusClient creates a client for the status API rooted at baseURL.
//
// adminToken, when non-empty, is sent as X-Admin-Token on restart requests.
// The client defaults to a 10 second timeout.
func NewStatusClient(baseURL, adminToken string, client *http.Client) *StatusClient {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080/api/bot"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &StatusClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		httpClient: client,
	}
}

// FetchServices retrieves the full service list from GET {base}/services.
//
// Any transport failure or non-2xx status is an error; the caller decides how to degrade.
func (c *StatusClient) FetchServices(ctx context.Context) ([]models.Service, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/services", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var payload servicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode services response: %w", err)
	}

	return payload.Services, nil
}

// RestartService issues POST {base}/services/{id}/restart.
//
// A non-2xx response is reported as [shared.ErrRestartFailed] carrying the
// server's reason when the body held one, otherwise a generic "Restart failed".
func (c *StatusClient) RestartService(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/services/%s/restart", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.adminToken != "" {
		req.Header.Set("X-Admin-Token", c.adminToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	reason := "Restart failed"
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		reason = body.Error
	}

	return fmt.Errorf("%w: %s (status %d)", shared.ErrRestartFailed, reason, resp.StatusCode)
}
