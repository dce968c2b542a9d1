// Package jobsearch provides a client for the JSearch job listings API and
// the wire types shared with the resume job feed cache.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

const (
	defaultBaseURL = "https://jsearch.p.rapidapi.com/search"
	defaultHost    = "jsearch.p.rapidapi.com"
)

// Searcher is the interface consumed by the dashboard and jobs handlers.
type Searcher interface {
	Search(ctx context.Context, filters Filters) ([]Listing, error)
}

// Options configures the client.
type Options struct {
	BaseURL    string
	Host       string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client calls the JSearch API over RapidAPI.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a JSearch client. A nil opts uses production defaults.
func NewClient(apiKey string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := opts.Host
	if host == "" {
		host = defaultHost
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		host:       host,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// searchResponse is the JSearch response envelope.
type searchResponse struct {
	Status string    `json:"status"`
	Data   []Listing `json:"data"`
}

// Search executes a single-page listing search. Listing descriptions are
// reduced to plain text before being returned.
func (c *Client) Search(ctx context.Context, filters Filters) ([]Listing, error) {
	if strings.TrimSpace(filters.Query) == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if filters.DatePosted != "" && !filters.DatePosted.Valid() {
		return nil, fmt.Errorf("invalid date_posted window %q", filters.DatePosted)
	}

	req, err := c.buildRequest(ctx, filters)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute job search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read job search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search API returned HTTP %d", resp.StatusCode)
	}

	var envelope searchResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode job search response: %w", err)
	}
	if envelope.Status != "OK" {
		return nil, fmt.Errorf("job search API returned status %q", envelope.Status)
	}

	listings := envelope.Data
	for i := range listings {
		if listings[i].JobDescription != nil {
			clean := SanitizeDescription(*listings[i].JobDescription)
			listings[i].JobDescription = &clean
		}
	}
	return listings, nil
}

func (c *Client) buildRequest(ctx context.Context, filters Filters) (*http.Request, error) {
	query := strings.TrimSpace(filters.Query)
	if loc := strings.TrimSpace(filters.Location); loc != "" {
		query = query + " in " + loc
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	// "all" is the API default and is expressed by omitting the parameter
	if filters.DatePosted != "" && filters.DatePosted != WindowAll {
		params.Set("date_posted", string(filters.DatePosted))
	}
	if filters.WorkFromHome {
		params.Set("work_from_home", strconv.FormatBool(true))
	}
	if len(filters.EmploymentTypes) > 0 {
		params.Set("employment_types", strings.Join(filters.EmploymentTypes, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create job search request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)
	return req, nil
}
