package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	geminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	geminiKeyHeader = "x-goog-api-key"
	maxErrorBody    = 512
)

// GeminiProvider talks to the generateContent REST endpoint directly
type GeminiProvider struct {
	apiKey  string
	baseURL string
	model   string
	config  geminiGenerationConfig
	client  *http.Client
}

func NewGeminiProvider(apiKey, baseURL, model string, temperature float32, maxTokens int) *GeminiProvider {
	if baseURL == "" {
		baseURL = geminiBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		config: geminiGenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *GeminiProvider) GetProviderName() string {
	return "Google Gemini"
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type geminiResponse struct {
	Candidates     []geminiCandidate `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// text joins the parts of the first candidate
func (r *geminiResponse) text() (string, error) {
	if r.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", r.PromptFeedback.BlockReason)
	}
	if len(r.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty candidate (finish reason: %s)", r.Candidates[0].FinishReason)
	}
	return sb.String(), nil
}

func (p *GeminiProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: []geminiPart{{Text: userMessage}}}},
		GenerationConfig: p.config,
	}
	if systemPrompt != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, url.PathEscape(p.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(geminiKeyHeader, p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("gemini error (model: %s, status: %d): %s", p.model, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}

	text, err := parsed.text()
	if err != nil {
		return "", err
	}

	log.Debug().Str("provider", "gemini").Str("model", p.model).Int("chars", len(text)).Msg("🔍 Gemini reply received")
	return text, nil
}
