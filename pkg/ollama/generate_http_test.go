package ollama_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hireloop/intake/internal/config"
	"github.com/hireloop/intake/pkg/ollama"
)

func TestClient_Generate_Retries_Backoff_Succeeds(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/generate" {
			a := atomic.AddInt32(&attempts, 1)
			if a == 1 {
				// transient error
				http.Error(w, "temporary", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/x-ndjson")
			_, _ = w.Write([]byte(`{"model":"m","response":"ok","done":true}` + "\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cfg := config.OllamaConfig{BaseURL: srv.URL, Timeout: 2 * time.Second, Retries: 2, Backoff: 10 * time.Millisecond, CircuitFailureThreshold: 10}
	client, err := ollama.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	res, err := client.Generate(context.Background(), "m", "p")
	if err != nil {
		t.Fatalf("Generate expected success after retry, got error: %v", err)
	}
	if res.Text != "ok" {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if res.Meta == nil {
		t.Fatalf("expected meta in result")
	}
	if _, ok := res.Meta["latency_ms"]; !ok {
		t.Fatalf("expected latency_ms in meta")
	}
	if atomic.LoadInt32(&attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestClient_CircuitBreaker_Opens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permanent", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.OllamaConfig{BaseURL: srv.URL, Timeout: time.Second, Retries: 0, Backoff: time.Millisecond, CircuitFailureThreshold: 2, CircuitReset: time.Minute}
	client, err := ollama.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	// first failure stays below the threshold and surfaces the server error
	if _, err := client.Generate(ctx, "m", "p"); err == nil || errors.Is(err, ollama.ErrCircuitOpen) {
		t.Fatalf("expected plain failure on first attempt, got %v", err)
	}

	// second failure trips the breaker
	if _, err := client.Generate(ctx, "m", "p"); !errors.Is(err, ollama.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen after threshold, got %v", err)
	}

	// breaker stays open for further calls
	if _, err := client.Generate(ctx, "m", "p"); !errors.Is(err, ollama.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen while open, got %v", err)
	}
}
