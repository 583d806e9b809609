// internal/adapters/rest/client.go
package rest

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

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/ports"
)

// Error bodies are small; anything past this is noise from a proxy.
const maxErrorBodyBytes = 1 << 20

// Options configures the REST client.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client is the HTTP implementation of the API ports. It attaches the
// bearer token from the store when present, tags every request with an
// X-Request-ID, applies client-side rate limiting, and parses error
// payloads once into domain.APIError.
type Client struct {
	http    *http.Client
	baseURL *url.URL
	tokens  ports.TokenStore
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a REST client for the given base URL.
func NewClient(opts Options, tokens ports.TokenStore, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 10
	}
	if opts.Burst <= 0 {
		opts.Burst = 5
	}
	return &Client{
		http:    &http.Client{Timeout: opts.Timeout},
		baseURL: base,
		tokens:  tokens,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
		logger:  logger.With(slog.String("component", "api_client")),
	}, nil
}

// do issues one API request. Non-2xx responses are decoded into
// *domain.APIError; transport failures are returned wrapped, carrying no
// structured payload.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u := *c.baseURL
	u.Path = path
	if len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			values.Set(key, value)
		}
		u.RawQuery = values.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	if token, err := c.tokens.Load(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.StatusCode >= http.StatusBadRequest {
		// Only error bodies are capped; success payloads read in full.
		reader = io.LimitReader(resp.Body, maxErrorBodyBytes)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	c.logger.Debug("request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode >= http.StatusBadRequest {
		return domain.DecodeErrorPayload(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// nullable maps an empty trimmed string to JSON null, the convention the
// API uses for optional fields.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
