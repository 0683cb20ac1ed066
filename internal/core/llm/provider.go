package llm

import (
	"context"
	"fmt"
)

// LLMProvider is a chat-style text generation backend
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType selects the backend
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderGroq   ProviderType = "groq"
)

// ProviderConfig holds everything needed to build a provider. It is filled from
// config.Config by the caller; nothing here reads the environment.
type ProviderConfig struct {
	Type ProviderType

	// API Keys
	OpenAIKey string
	GeminiKey string
	GroqKey   string

	// BaseURL overrides the provider endpoint (proxies, tests)
	BaseURL string

	// Model configs
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultModel returns the model used when none is configured
func DefaultModel(t ProviderType) string {
	switch t {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGroq:
		return "llama-3.1-8b-instant"
	default:
		return "gemini-2.5-flash"
	}
}

// NewProvider builds the configured provider
func NewProvider(cfg ProviderConfig) (LLMProvider, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Type)
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}

	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return NewGeminiProvider(cfg.GeminiKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}
