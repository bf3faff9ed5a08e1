package suggestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// FallbackSuggestion is returned whenever the external endpoint cannot supply
// usable text.
const FallbackSuggestion = "Focus on completing pending tasks."

// maxBodyBytes caps how much of the upstream response is read.
const maxBodyBytes = 1 << 20

var (
	// ErrUnavailable wraps every failure to obtain a suggestion.
	ErrUnavailable = errors.New("suggestion unavailable")

	// ErrInvalidConfig is returned by New for a missing URL or non-positive timeout.
	ErrInvalidConfig = errors.New("invalid suggestion client configuration")
)

// Client calls the external content endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client for url with the given per-call timeout.
func New(url string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: url cannot be empty", ErrInvalidConfig)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, timeout)
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = timeout

	return &Client{
		url:        url,
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "suggestion_client")),
	}, nil
}

// NewFromConfig creates a Client from application configuration.
func NewFromConfig(cfg config.SuggestionConfig, logger *slog.Logger) (*Client, error) {
	return New(cfg.URL, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
}

type upstreamPost struct {
	Body string `json:"body"`
}

// Fetch performs a single GET and returns the trimmed "body" text.
// All failures wrap ErrUnavailable.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", fmt.Errorf("%w: upstream status %d", ErrUnavailable, resp.StatusCode)
	}

	var post upstreamPost
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&post); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	text := strings.TrimSpace(post.Body)
	if text == "" {
		return "", fmt.Errorf("%w: empty body", ErrUnavailable)
	}
	return text, nil
}

// Suggest returns upstream text, or FallbackSuggestion on any failure.
func (c *Client) Suggest(ctx context.Context) string {
	start := time.Now()
	text, err := c.Fetch(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, c.logger).WarnContext(ctx, "using fallback suggestion",
			slog.String("error", redact.Error(err)),
			slog.Duration("elapsed", time.Since(start)))
		return FallbackSuggestion
	}
	return text
}
