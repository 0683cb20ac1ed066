package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/quota"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

type stubProvider struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (p *stubProvider) GenerateResponse(_ context.Context, _, userMessage string) (string, error) {
	p.calls++
	p.prompt = userMessage
	return p.reply, p.err
}

func (p *stubProvider) GetProviderName() string {
	return "Stub"
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (l stubLimiter) Allow(context.Context, uuid.UUID) (quota.Decision, error) {
	return quota.Decision{Allowed: l.allowed}, l.err
}

func newAssistant(f *fixture, provider llm.LLMProvider, limiter quota.Limiter) *AssistantService {
	var client *llm.Client
	if provider != nil {
		client = llm.NewClientWithProvider(provider)
	}
	return NewAssistantService(f.auth, f.inventory, f.analytics, client, limiter)
}

func TestChat_BuildsBusinessContext(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.inventory.CreateItem(ctx, f.ownerA.ID, &models.CreateInventoryRequest{ItemName: "Masala Chai", StockQuantity: 3, ItemPrice: 120})
	require.NoError(t, err)
	f.sellAt(t, f.ownerA.ID, saleTime, saleOf("Amit", product("Masala Chai", 4, 120)))

	provider := &stubProvider{reply: "  Restock Masala Chai this week.  "}
	resp, err := newAssistant(f, provider, nil).Chat(ctx, f.ownerA.ID, "What should I restock?")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Restock Masala Chai this week.", resp.Reply)

	assert.Contains(t, provider.prompt, "Asha Traders")
	assert.Contains(t, provider.prompt, "Masala Chai")
	assert.Contains(t, provider.prompt, "480.00")
	assert.True(t, strings.HasSuffix(provider.prompt, "Owner question: What should I restock?"))
}

func TestChat_ProviderFailureApologises(t *testing.T) {
	f := newFixture(t)

	for _, provider := range []*stubProvider{
		{err: errors.New("upstream 503")},
		{reply: "   "},
	} {
		resp, err := newAssistant(f, provider, nil).Chat(context.Background(), f.ownerA.ID, "hello")
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, ApologyReply, resp.Reply)
	}
}

func TestChat_WithoutProvider(t *testing.T) {
	f := newFixture(t)

	resp, err := newAssistant(f, nil, nil).Chat(context.Background(), f.ownerA.ID, "hello")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ApologyReply, resp.Reply)
}

func TestChat_Validation(t *testing.T) {
	f := newFixture(t)
	provider := &stubProvider{reply: "ok"}
	assistant := newAssistant(f, provider, nil)

	_, err := assistant.Chat(context.Background(), f.ownerA.ID, "   ")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = assistant.Chat(context.Background(), f.ownerA.ID, strings.Repeat("क", 2001))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	assert.Zero(t, provider.calls)
}

func TestChat_Quota(t *testing.T) {
	f := newFixture(t)
	provider := &stubProvider{reply: "ok"}

	_, err := newAssistant(f, provider, stubLimiter{allowed: false}).Chat(context.Background(), f.ownerA.ID, "hello")
	assert.Equal(t, apperror.KindQuotaExceeded, apperror.KindOf(err))
	assert.Equal(t, 429, apperror.StatusCode(err))
	assert.Zero(t, provider.calls)

	// an unreachable quota store does not block the owner
	resp, err := newAssistant(f, provider, stubLimiter{err: errors.New("connection refused")}).Chat(context.Background(), f.ownerA.ID, "hello")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, provider.calls)
}
