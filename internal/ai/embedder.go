package ai

import (
	"context"
	"fmt"

	"github.com/hireloop/intake/pkg/ollama"
)

// Embedder binds the Ollama client to a single embedding model.
type Embedder struct {
	client *ollama.Client
	model  string
}

func NewEmbedder(client *ollama.Client, model string) *Embedder {
	return &Embedder{client: client, model: model}
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vec, err := e.client.Embeddings(ctx, e.model, text)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	return vec, nil
}
