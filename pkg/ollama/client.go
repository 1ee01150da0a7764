package ollama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hireloop/intake/internal/config"
	"github.com/ollama/ollama/api"
)

var ErrCircuitOpen = errors.New("ollama circuit open")

// Client wraps the Ollama API client and adds retries, timeout, and circuit breaker.
type Client struct {
	api    *api.Client
	cfg    config.OllamaConfig
	client *http.Client

	// simple circuit breaker state
	failures  int32
	openUntil int64 // unix nano
	closed    int32 // atomic flag for Close()
}

// GenerateResult is a typed representation of a model response.
type GenerateResult struct {
	Text string         `json:"text"`
	Meta map[string]any `json:"meta,omitempty"`
}

// NewClient creates a new Ollama client wrapper.
func NewClient(cfg config.OllamaConfig, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		api:    api.NewClient(u, httpClient),
		cfg:    cfg,
		client: httpClient,
	}
	logger.Info("ollama: NewClient created", slog.String("base_url", cfg.BaseURL), slog.Duration("timeout", cfg.Timeout))
	return c, nil
}

func NewDefaultClient(cfg config.OllamaConfig) (*Client, error) {
	defaultClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return NewClient(cfg, defaultClient)
}

func (c *Client) isCircuitOpen() bool {
	if atomic.LoadInt32(&c.failures) < int32(c.cfg.CircuitFailureThreshold) {
		return false
	}

	if time.Now().UnixNano() < atomic.LoadInt64(&c.openUntil) {
		return true
	}

	// attempt half-open: reset failures and allow a request
	atomic.StoreInt32(&c.failures, 0)
	return false
}

// Close releases any resources held by the client. Currently this will close
// idle connections on the underlying HTTP transport when supported. Close is
// idempotent and safe to call multiple times.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	if c.client != nil && c.client.Transport != nil {
		if tr, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
	return nil
}

// package-level logger for pkg/ollama; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/ollama. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func (c *Client) recordFailure() {
	v := atomic.AddInt32(&c.failures, 1)
	if v >= int32(c.cfg.CircuitFailureThreshold) {
		atomic.StoreInt64(&c.openUntil, time.Now().Add(c.cfg.CircuitReset).UnixNano())
	}
}

// Health pings the Ollama instance.
func (c *Client) Health(ctx context.Context) error {
	if c.isCircuitOpen() {
		return ErrCircuitOpen
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.api.Heartbeat(ctx); err != nil {
		c.recordFailure()
		return fmt.Errorf("health check failed: %w", err)
	}

	atomic.StoreInt32(&c.failures, 0)
	return nil
}

// Generate sends a prompt to the model and collects the streamed response
// into a single string. It supports retries and timeouts.
func (c *Client) Generate(ctx context.Context, model string, prompt string) (GenerateResult, error) {
	var lastErr error
	var empty GenerateResult
	if c.isCircuitOpen() {
		return empty, ErrCircuitOpen
	}

	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		ctxReq, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		req := &api.GenerateRequest{Model: model, Prompt: prompt}
		var sb strings.Builder
		start := time.Now()
		err := c.api.Generate(ctxReq, req, func(r api.GenerateResponse) error {
			sb.WriteString(r.Response)
			return nil
		})

		cancel()
		latency := time.Since(start)
		if err == nil {
			atomic.StoreInt32(&c.failures, 0)
			meta := map[string]any{"model": model, "latency_ms": latency.Milliseconds()}
			return GenerateResult{Text: sb.String(), Meta: meta}, nil
		}

		lastErr = err
		c.recordFailure()

		// backoff
		time.Sleep(c.cfg.Backoff * time.Duration(attempt+1))
		if c.isCircuitOpen() {
			return empty, ErrCircuitOpen
		}
	}

	return empty, fmt.Errorf("generate failed after retries: %w", lastErr)
}

// Embeddings returns the embedding vector for the given text.
func (c *Client) Embeddings(ctx context.Context, model string, text string) ([]float64, error) {
	var lastErr error
	if c.isCircuitOpen() {
		return nil, ErrCircuitOpen
	}

	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		ctxReq, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		req := &api.EmbeddingRequest{Model: model, Prompt: text}
		resp, err := c.api.Embeddings(ctxReq, req)
		cancel()
		if err == nil {
			if len(resp.Embedding) == 0 {
				return nil, fmt.Errorf("empty embedding for model %s", model)
			}
			atomic.StoreInt32(&c.failures, 0)
			return resp.Embedding, nil
		}

		lastErr = err
		c.recordFailure()

		time.Sleep(c.cfg.Backoff * time.Duration(attempt+1))
		if c.isCircuitOpen() {
			return nil, ErrCircuitOpen
		}
	}

	return nil, fmt.Errorf("embeddings failed after retries: %w", lastErr)
}
