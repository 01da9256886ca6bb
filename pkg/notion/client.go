package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2025-09-03"
	// MaxPageSize is the largest page_size the API accepts.
	MaxPageSize = 100
)

// Client is the Notion HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	version    string
	httpClient *http.Client
}

// NewClient creates a new Notion client. Empty baseURL and version fall back
// to the public API defaults.
func NewClient(baseURL, apiKey, version string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if version == "" {
		version = DefaultVersion
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		version: version,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueryDataSource fetches one page of entries from a data source.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, req QueryRequest) (*QueryResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/data_sources/%s/query", c.baseURL, url.PathEscape(dataSourceID))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Notion-Version", c.version)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call notion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		return nil, apiErr
	}

	var result QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
