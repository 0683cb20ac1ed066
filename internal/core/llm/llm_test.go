package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProvider(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"owner"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("secret", srv.URL, "gemini-test", 0.5, 256)
	text, err := p.GenerateResponse(context.Background(), "be brief", "hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello owner", text)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "hi", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "be brief", got.SystemInstruction.Parts[0].Text)
	assert.Equal(t, 256, got.GenerationConfig.MaxOutputTokens)
}

func TestGeminiProviderBlockedPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("secret", srv.URL, "gemini-test", 0.5, 256)
	_, err := p.GenerateResponse(context.Background(), "", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestGeminiProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("secret", srv.URL, "gemini-test", 0.5, 256)
	_, err := p.GenerateResponse(context.Background(), "", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 429")
}

func TestNewProviderRequiresKey(t *testing.T) {
	_, err := NewProvider(ProviderConfig{Type: ProviderGemini})
	assert.Error(t, err)

	_, err = NewProvider(ProviderConfig{Type: "unknown", GeminiKey: "k"})
	assert.Error(t, err)

	p, err := NewProvider(ProviderConfig{Type: ProviderGroq, GroqKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "Groq", p.GetProviderName())
}

type stubProvider struct {
	text string
	err  error
}

func (s stubProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.text, s.err
}

func (s stubProvider) GetProviderName() string { return "stub" }

func TestClientGenerateContent(t *testing.T) {
	ok := NewClientWithProvider(stubProvider{text: "  answer \n"})
	res, err := ok.GenerateContent(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, GenerateResult{Text: "answer", Success: true}, res)

	failing := NewClientWithProvider(stubProvider{err: errors.New("down")})
	res, err = failing.GenerateContent(context.Background(), "q")
	assert.Error(t, err)
	assert.False(t, res.Success)

	empty := NewClientWithProvider(stubProvider{text: "   "})
	_, err = empty.GenerateContent(context.Background(), "q")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(&BusinessContext{
		BusinessName: "Amit Stationers",
		Inventory: []InventoryLine{
			{Name: "Pen", Stock: 40, Price: 10, Fields: map[string]string{"color": "blue", "brand": "Reynolds"}},
		},
		Sales: &SalesSummary{
			Period:      "month",
			Revenue:     1200,
			SalesCount:  4,
			TopProducts: []ProductLine{{Name: "Pen", Quantity: 30, Revenue: 300}},
		},
	})

	assert.Contains(t, prompt, "Amit Stationers")
	assert.Contains(t, prompt, "=== SALES (MONTH) ===")
	assert.Contains(t, prompt, "- Pen: 40 in stock @ Rs. 10.00 (brand: Reynolds, color: blue)")
	assert.Contains(t, prompt, "- Pen: 30 sold")

	empty := BuildSystemPrompt(&BusinessContext{})
	assert.Contains(t, empty, "a small business")
	assert.Contains(t, empty, "inventory is currently empty")
}
