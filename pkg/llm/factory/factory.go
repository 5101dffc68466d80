package factory

import (
	"fmt"

	"college-buddy-be/pkg/llm"
	"college-buddy-be/pkg/llm/ollama"
	"college-buddy-be/pkg/llm/openai"
)

// NewLLMProvider creates an LLM provider based on the configured backend name.
func NewLLMProvider(providerName, modelName, ollamaBaseURL, openaiAPIKey string) (llm.LLMProvider, error) {
	switch providerName {
	case "openai":
		if openaiAPIKey == "" {
			return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY is empty")
		}
		return openai.NewOpenAIProvider(openaiAPIKey, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (expected \"openai\" or \"ollama\")", providerName)
	}
}
