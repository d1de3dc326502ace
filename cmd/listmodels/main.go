package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"careersight/internal/llmclient"
)

// Prints the Gemini models available to the configured API key. Handy when
// a model name in config starts returning 404s.
func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	cli, err := llmclient.NewGeminiClient(ctx, apiKey, llmclient.DefaultGeminiModel)
	if err != nil {
		log.Fatalf("client init: %v", err)
	}
	defer cli.Close()

	names, err := cli.ListModels(ctx)
	if err != nil {
		log.Fatalf("list models: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(names); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
