// Package backendapi implements the BackendGateway contract against the
// job sync backend's JSON-over-HTTP surface.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"jobdeck/domain/contracts"
	"jobdeck/domain/dashboard"
	"jobdeck/logging"
)

// Client is the HTTP implementation of contracts.BackendGateway.
// It owns request construction, error body decoding, and wire-to-domain
// mapping; all retry/refresh policy lives in the application layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewClient creates a backend client for the given base URL.
// A zero timeout disables the client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.Default().WithComponent("backend_client"),
	}
}

var _ contracts.BackendGateway = (*Client)(nil)

// ListJobGroups fetches the aggregated job group rows for the given params.
func (c *Client) ListJobGroups(ctx context.Context, params dashboard.QueryParams) ([]dashboard.JobGroupSummary, error) {
	var resp jobGroupsResponse
	if err := c.getJSON(ctx, "/api/job-groups", params.Values(), &resp); err != nil {
		return nil, fmt.Errorf("list job groups: %w", err)
	}
	return mapJobGroups(resp.JobGroups), nil
}

// GetStats fetches the dashboard counters.
func (c *Client) GetStats(ctx context.Context) (dashboard.StatsSnapshot, error) {
	var resp statsResponse
	if err := c.getJSON(ctx, "/api/stats", nil, &resp); err != nil {
		return dashboard.StatsSnapshot{}, fmt.Errorf("get stats: %w", err)
	}
	return mapStats(resp), nil
}

// ListCountries fetches the country list for the sync form dropdown.
func (c *Client) ListCountries(ctx context.Context) ([]string, error) {
	var resp countriesResponse
	if err := c.getJSON(ctx, "/api/countries", nil, &resp); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return resp.Countries, nil
}

// ListJobsByGroup fetches all jobs of one group for the detail modal.
func (c *Client) ListJobsByGroup(ctx context.Context, groupID string) ([]dashboard.JobRecord, error) {
	path := "/api/jobs/" + url.PathEscape(groupID)
	var resp jobsResponse
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list jobs for group %q: %w", groupID, err)
	}
	return mapJobs(resp.Jobs), nil
}

// SyncJobs submits a sync command and returns the interpreted result.
func (c *Client) SyncJobs(ctx context.Context, req dashboard.SyncRequest) (*dashboard.SyncResult, error) {
	body := syncJobsRequest{
		JobGroupID: req.GroupID,
		Status:     string(req.Status),
		Country:    req.Country,
	}

	var resp syncJobsResponse
	if err := c.postJSON(ctx, "/api/sync-jobs", body, &resp); err != nil {
		return nil, fmt.Errorf("sync jobs: %w", err)
	}
	return mapSyncResult(resp), nil
}

// ReindexAll submits the admin reindex command and returns the server message.
func (c *Client) ReindexAll(ctx context.Context, req dashboard.ReindexRequest) (string, error) {
	body := reindexRequest{
		SecretCode: req.SecretCode,
		JobGroupID: req.GroupID,
	}

	var resp reindexResponse
	if err := c.postJSON(ctx, "/api/reindex-all", body, &resp); err != nil {
		return "", fmt.Errorf("reindex: %w", err)
	}
	return resp.Message, nil
}

// getJSON issues a GET request and decodes a 2xx JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// postJSON issues a POST request with a JSON body and decodes the response.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.BackendError("Backend request failed", err, req.URL.Path)
		return err
	}
	defer resp.Body.Close()

	c.logger.Backend("Backend request completed", req.URL.Path,
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into a BackendError, keeping the
// server's {"detail": ...} message when the body parses.
func decodeError(resp *http.Response) error {
	backendErr := &contracts.BackendError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return backendErr
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		backendErr.Detail = errResp.Detail
	}
	return backendErr
}
