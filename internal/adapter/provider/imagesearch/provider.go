// Package imagesearch finds representative images through the Google Custom
// Search JSON API.
package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Provider looks up image links for a free-text query.
type Provider struct {
	baseURL        string
	apiKey         string
	searchEngineID string
	httpClient     *http.Client
	log            *slog.Logger
}

// New creates a Provider talking to the public Custom Search endpoint.
func New(apiKey, searchEngineID string, timeout time.Duration, logger *slog.Logger) *Provider {
	return NewWithURL(defaultBaseURL, apiKey, searchEngineID, timeout, logger)
}

// NewWithURL creates a Provider with a custom base URL (for testing).
func NewWithURL(baseURL, apiKey, searchEngineID string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:        baseURL,
		apiKey:         apiKey,
		searchEngineID: searchEngineID,
		httpClient:     &http.Client{Timeout: timeout},
		log:            logger.With("adapter", "imagesearch"),
	}
}

type searchResponse struct {
	Items []struct {
		Link string `json:"link"`
	} `json:"items"`
}

// SearchImage returns the link of the top image result for the query, or an
// empty string when the search yields nothing.
func (p *Provider) SearchImage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("cx", p.searchEngineID)
	params.Set("q", query)
	params.Set("searchType", "image")
	params.Set("num", "1")
	params.Set("fields", "items(link)")

	reqURL := p.baseURL + "?" + params.Encode()

	p.log.DebugContext(ctx, "image search request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("imagesearch: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagesearch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imagesearch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("imagesearch: read body: %w", err)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("imagesearch: decode json: %w", err)
	}

	if len(decoded.Items) == 0 {
		p.log.DebugContext(ctx, "image search empty", slog.String("query", query))
		return "", nil
	}

	return decoded.Items[0].Link, nil
}
