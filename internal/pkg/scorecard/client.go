package scorecard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduplanhq/eduplan-backend/internal/pkg/apperrors"
)

const (
	defaultPerPage = 25
	requestTimeout = 20 * time.Second
)

// Config carries the provider endpoint and credentials.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client proxies the College Scorecard statistics API and remaps its
// records into the internal University shape. It performs no retries; a
// non-success provider response fails the whole call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a provider client.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// SearchParams are the accepted search filters.
type SearchParams struct {
	Query   string
	State   string
	Page    int
	PerPage int
}

// Metadata is the provider's pagination metadata, passed through unchanged.
type Metadata struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// SearchResult is a page of remapped records plus provider metadata.
type SearchResult struct {
	Results  []University `json:"results"`
	Metadata Metadata     `json:"metadata"`
}

// providerResponse is the raw shape of a provider reply.
type providerResponse struct {
	Metadata Metadata                 `json:"metadata"`
	Results  []map[string]interface{} `json:"results"`
}

// Search queries schools by optional name and state filters, sorted by
// enrollment size descending.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("fields", strings.Join(baseFields, ","))
	query.Set("sort", "latest.student.size:desc")
	if params.Query != "" {
		query.Set("school.name", params.Query)
	}
	if params.State != "" {
		query.Set("school.state", params.State)
	}

	payload, err := c.get(ctx, "/schools", query)
	if err != nil {
		return nil, err
	}

	results := make([]University, 0, len(payload.Results))
	for _, record := range payload.Results {
		results = append(results, MapSchool(record))
	}

	return &SearchResult{Results: results, Metadata: payload.Metadata}, nil
}

// GetSchool fetches one school by institution id. A zero-result reply maps
// to ErrSchoolNotFound, distinct from transport failures.
func (c *Client) GetSchool(ctx context.Context, unitID string) (*University, error) {
	query := url.Values{}
	query.Set("id", unitID)
	query.Set("fields", strings.Join(baseFields, ","))

	payload, err := c.get(ctx, "/schools", query)
	if err != nil {
		return nil, err
	}

	if len(payload.Results) == 0 {
		return nil, apperrors.ErrSchoolNotFound
	}

	school := MapSchool(payload.Results[0])
	return &school, nil
}

// get performs one provider request with the API key attached.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*providerResponse, error) {
	query.Set("api_key", c.apiKey)

	requestURL := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Str("path", path).Msg("Provider returned non-success status")
		return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrUpstreamFailure, resp.StatusCode)
	}

	payload := &providerResponse{}
	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode provider response: %v", apperrors.ErrUpstreamFailure, err)
	}

	return payload, nil
}
