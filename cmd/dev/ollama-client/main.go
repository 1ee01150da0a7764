package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
)

var defaultClient = &http.Client{
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

func main() {
	uri := flag.String("url", "http://localhost:11434", "Ollama base URL")
	chatModel := flag.String("chat-model", "llama3", "chat model for the summary smoke test")
	embedModel := flag.String("embed-model", "nomic-embed-text", "embedding model for the vector smoke test")
	flag.Parse()

	ctx := context.Background()

	base, err := url.ParseRequestURI(*uri)
	if err != nil {
		log.Fatal(err)
	}
	client := api.NewClient(base, defaultClient)

	if err := generate(ctx, client, *chatModel); err != nil {
		log.Fatal(err)
	}
	if err := embed(ctx, client, *embedModel); err != nil {
		log.Fatal(err)
	}
}

// generate exercises the chat endpoint with a summary-shaped prompt
func generate(ctx context.Context, client *api.Client, model string) error {
	req := &api.GenerateRequest{
		Model:  model,
		Prompt: "Summarize in one paragraph: senior Go engineer, 5+ years, SQL, HTTP APIs.",
	}

	respFunc := func(resp api.GenerateResponse) error {
		fmt.Print(resp.Response)
		return nil
	}

	if err := client.Generate(ctx, req, respFunc); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// embed exercises the embedding endpoint and prints the vector dimension
func embed(ctx context.Context, client *api.Client, model string) error {
	resp, err := client.Embeddings(ctx, &api.EmbeddingRequest{Model: model, Prompt: "golang backend engineer"})
	if err != nil {
		return err
	}

	fmt.Printf("embedding dimension: %d\n", len(resp.Embedding))
	return nil
}
