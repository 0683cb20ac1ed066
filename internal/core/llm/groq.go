package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

type GroqProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewGroqProvider(apiKey, baseURL, model string, temperature float32, maxTokens int) *GroqProvider {
	// Groq uses OpenAI-compatible API with custom base URL
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &GroqProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *GroqProvider) GetProviderName() string {
	return "Groq"
}

func (p *GroqProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return chatCompletion(ctx, p.client, "groq", p.model, p.temperature, p.maxTokens, systemPrompt, userMessage)
}
