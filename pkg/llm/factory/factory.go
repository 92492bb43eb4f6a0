package factory

import (
	"fmt"

	"zyglio-be/pkg/llm"
	"zyglio-be/pkg/llm/deepseek"
	"zyglio-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "deepseek":
		if apiKey == "" {
			return nil, fmt.Errorf("deepseek provider requires DEEPSEEK_API_KEY")
		}
		return deepseek.NewDeepSeekProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
