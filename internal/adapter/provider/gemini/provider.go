// Package gemini calls the Google Generative Language API to produce travel
// suggestions from a text prompt.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Provider generates free-form text completions with a Gemini model.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Provider talking to the public Generative Language endpoint.
func New(apiKey, model string, timeout time.Duration, logger *slog.Logger) *Provider {
	return NewWithURL(defaultBaseURL, apiKey, model, timeout, logger)
}

// NewWithURL creates a Provider with a custom base URL (for testing).
func NewWithURL(baseURL, apiKey, model string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gemini"),
	}
}

// GenerateContent sends the prompt to the model and returns the raw text of
// the first candidate. Transport failures and provider-side overload map to
// domain.ErrAiUnavailable; a well-formed response without usable text maps to
// domain.AiServiceError.
func (p *Provider) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.baseURL, url.PathEscape(p.model), url.QueryEscape(p.apiKey))

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	p.log.DebugContext(ctx, "gemini request", slog.Int("prompt_len", len(prompt)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("gemini: request cancelled: %w", err)
		}
		p.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: request failed: %w", domain.ErrAiUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", p.statusError(ctx, resp.StatusCode, respBody)
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		p.log.ErrorContext(ctx, "gemini undecodable response body",
			slog.String("body", truncate(string(respBody), 500)),
		)
		return "", fmt.Errorf("gemini: %w", domain.NewAiServiceError("model returned malformed content"))
	}

	text := decoded.text()
	if text == "" {
		return "", fmt.Errorf("gemini: %w", domain.NewAiServiceError("model returned no content"))
	}

	p.log.DebugContext(ctx, "gemini response",
		slog.Int("status", resp.StatusCode),
		slog.Int("text_len", len(text)),
	)

	return text, nil
}

// statusError maps a non-200 response to a domain error. 5xx and 429 mean the
// provider cannot serve right now; everything else carries the provider's own
// error message when one is present.
func (p *Provider) statusError(ctx context.Context, status int, body []byte) error {
	p.log.ErrorContext(ctx, "gemini error response",
		slog.Int("status", status),
		slog.String("body", truncate(string(body), 500)),
	)

	if status >= 500 || status == http.StatusTooManyRequests {
		return fmt.Errorf("gemini: status %d: %w", status, domain.ErrAiUnavailable)
	}

	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("gemini: %w", domain.NewAiServiceError(apiErr.Error.Message))
	}

	return fmt.Errorf("gemini: %w", domain.NewAiServiceError(fmt.Sprintf("unexpected status %d", status)))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
