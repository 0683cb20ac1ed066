package llm

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// GenerateResult is the outcome of a single prompt
type GenerateResult struct {
	Text    string
	Success bool
}

// Client turns a prompt into text through one provider. It is built explicitly from config
// and passed to whatever needs it.
type Client struct {
	provider LLMProvider
	model    string
}

// NewClient builds a client for the configured provider
func NewClient(cfg ProviderConfig) (*Client, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel(cfg.Type)
	}

	log.Info().Str("provider", provider.GetProviderName()).Str("model", model).Msg("🤖 LLM client ready")

	return &Client{provider: provider, model: model}, nil
}

// NewClientWithProvider wraps an existing provider (tests, custom backends)
func NewClientWithProvider(provider LLMProvider) *Client {
	return &Client{provider: provider}
}

// GenerateContent sends the prompt as a single user turn. A provider failure yields
// Success=false together with the error so callers can decide what to show.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (GenerateResult, error) {
	return c.Generate(ctx, "", prompt)
}

// Generate sends a system instruction and a user message
func (c *Client) Generate(ctx context.Context, systemPrompt, userMessage string) (GenerateResult, error) {
	text, err := c.provider.GenerateResponse(ctx, systemPrompt, userMessage)
	if err != nil {
		return GenerateResult{Success: false}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return GenerateResult{Success: false}, ErrEmptyResponse
	}

	return GenerateResult{Text: text, Success: true}, nil
}

// ProviderName returns the backend's display name
func (c *Client) ProviderName() string {
	return c.provider.GetProviderName()
}
