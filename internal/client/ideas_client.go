package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ideas-listing/internal/ideas"
	"ideas-listing/internal/models"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// IdeasClient fetches pages from the listing API. It makes exactly one
// request per call.
type IdeasClient struct {
	client  *http.Client
	baseURL string
}

func NewIdeasClient(baseURL string, httpClient *http.Client) (*IdeasClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &IdeasClient{
		client:  httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *IdeasClient) GetIdeasURL(req ideas.PageRequest) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("size", strconv.Itoa(req.Size))
	params.Set("sort", string(req.Sort))

	return c.baseURL + "/api/ideas?" + params.Encode()
}

func (c *IdeasClient) FetchPage(ctx context.Context, req ideas.PageRequest) (models.Page, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GetIdeasURL(req), nil)
	if err != nil {
		return models.Page{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return models.Page{}, fmt.Errorf("fetch ideas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return models.Page{}, &StatusError{Code: resp.StatusCode}
	}

	var page models.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return models.Page{}, fmt.Errorf("decode ideas page: %w", err)
	}
	return page, nil
}

// Health reports whether the API answers its health check.
func (c *IdeasClient) Health(ctx context.Context) (models.HealthStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.HealthStatus{}, &StatusError{Code: resp.StatusCode}
	}

	var status models.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("decode health: %w", err)
	}
	return status, nil
}
