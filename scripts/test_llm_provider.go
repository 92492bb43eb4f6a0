//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"zyglio-be/internal/config"
	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/llm/factory"
)

// Manual smoke check for the configured LLM provider. Run with:
//
//	go run scripts/test_llm_provider.go
func main() {
	cfg := config.Load()
	fmt.Printf("Loaded Config > LLM Provider: %s\n", cfg.Ai.LLMProvider)
	fmt.Printf("Loaded Config > LLM Model: %s\n", cfg.Ai.LLMModel)

	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LLMApiKey,
	)
	if err != nil {
		log.Fatalf("Error initializing provider: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	fmt.Println("\nAsking for an opening interview question...")
	response, err := provider.Chat(ctx, []llm.Message{
		{Role: "user", Content: "You are interviewing a subject-matter expert about suturing. Ask one short opening question."},
	}, llm.WithTemperature(0.7))
	if err != nil {
		log.Fatalf("Error from provider: %v", err)
	}

	fmt.Printf("Success! Response:\n%s\n", response)
}
