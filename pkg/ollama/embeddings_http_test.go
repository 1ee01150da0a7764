package ollama_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hireloop/intake/internal/config"
	"github.com/hireloop/intake/pkg/ollama"
)

func TestClient_Embeddings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/embeddings" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"embedding":[0.1,0.2,0.3]}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cfg := config.OllamaConfig{BaseURL: srv.URL, Timeout: 2 * time.Second, Retries: 0, CircuitFailureThreshold: 10}
	client, err := ollama.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	vec, err := client.Embeddings(context.Background(), "embed-model", "some text")
	if err != nil {
		t.Fatalf("Embeddings failed: %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.1 {
		t.Fatalf("unexpected embedding: %#v", vec)
	}
}

func TestClient_Embeddings_EmptyVector_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/embeddings" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"embedding":[]}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cfg := config.OllamaConfig{BaseURL: srv.URL, Timeout: 2 * time.Second, Retries: 1, Backoff: time.Millisecond, CircuitFailureThreshold: 10}
	client, err := ollama.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	if _, err := client.Embeddings(context.Background(), "embed-model", "some text"); err == nil {
		t.Fatalf("expected error for empty embedding")
	}
}
