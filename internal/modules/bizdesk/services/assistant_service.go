package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/quota"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/utils"
)

const (
	// ApologyReply is returned whenever the AI backend cannot answer
	ApologyReply = "Sorry, I couldn't process your request right now. Please try again in a moment."

	maxMessageLength  = 2000
	inventoryContext  = 50
	lowStockThreshold = 5
	assistantTopCount = 5
)

// AssistantService answers owner questions with their own business data as context
type AssistantService struct {
	authService      *auth.Service
	inventoryService *InventoryService
	analyticsService *AnalyticsService
	client           *llm.Client
	limiter          quota.Limiter
}

// NewAssistantService wires the assistant. client may be nil when no provider is configured;
// limiter may be nil to disable the quota.
func NewAssistantService(
	authService *auth.Service,
	inventoryService *InventoryService,
	analyticsService *AnalyticsService,
	client *llm.Client,
	limiter quota.Limiter,
) *AssistantService {
	if limiter == nil {
		limiter = quota.Noop{}
	}
	return &AssistantService{
		authService:      authService,
		inventoryService: inventoryService,
		analyticsService: analyticsService,
		client:           client,
		limiter:          limiter,
	}
}

// Chat answers one message
func (s *AssistantService) Chat(ctx context.Context, ownerID uuid.UUID, message string) (*models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperror.Validation("Message is required")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, apperror.Validation("Message must be at most %d characters", maxMessageLength)
	}

	decision, err := s.limiter.Allow(ctx, ownerID)
	if err != nil {
		// fail open when the quota store is unreachable
		log.Warn().Err(err).Str("owner_id", ownerID.String()).Msg("⚠️  AI quota check failed")
	} else if !decision.Allowed {
		return nil, apperror.QuotaExceeded("Daily AI request limit reached")
	}

	if s.client == nil {
		utils.LogWarn("⚠️  AI chat requested but no LLM provider is configured", map[string]interface{}{"owner_id": ownerID.String()})
		return &models.ChatResponse{Reply: ApologyReply, Success: false}, nil
	}

	bc, err := s.businessContext(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildSystemPrompt(bc) + "\nOwner question: " + message

	start := time.Now()
	result, err := s.client.GenerateContent(ctx, prompt)
	if err != nil || !result.Success {
		log.Error().Err(err).
			Str("owner_id", ownerID.String()).
			Str("provider", s.client.ProviderName()).
			Msg("❌ AI provider failed")
		return &models.ChatResponse{Reply: ApologyReply, Success: false}, nil
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Dur("took", time.Since(start)).
		Int("reply_len", len(result.Text)).
		Msg("🤖 AI reply generated")

	return &models.ChatResponse{Reply: result.Text, Success: true}, nil
}

func (s *AssistantService) businessContext(ctx context.Context, ownerID uuid.UUID) (*llm.BusinessContext, error) {
	owner, err := s.authService.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items, err := s.inventoryService.Snapshot(ctx, ownerID, inventoryContext)
	if err != nil {
		return nil, apperror.Persistence("Failed to load business context", err)
	}

	bc := &llm.BusinessContext{
		BusinessName: owner.DisplayName(),
		Inventory:    make([]llm.InventoryLine, 0, len(items)),
	}

	lowStock := 0
	for i := range items {
		if items[i].IsLowStock(lowStockThreshold) {
			lowStock++
		}
		bc.Inventory = append(bc.Inventory, llm.InventoryLine{
			Name:   items[i].ItemName,
			Stock:  items[i].StockQuantity,
			Price:  items[i].ItemPrice,
			Fields: items[i].Fields(),
		})
	}

	now := s.analyticsService.now().In(s.analyticsService.Location())
	window := analytics.GetDateRange(analytics.PeriodMonth, now).UTC()

	overview, err := s.analyticsService.Overview(ctx, ownerID, window)
	if err != nil {
		return nil, apperror.Persistence("Failed to load business context", err)
	}
	top, err := s.analyticsService.TopProducts(ctx, ownerID, window, assistantTopCount)
	if err != nil {
		return nil, apperror.Persistence("Failed to load business context", err)
	}

	summary := &llm.SalesSummary{
		Period:        string(analytics.PeriodMonth),
		Revenue:       overview.TotalRevenue,
		Profit:        overview.TotalProfit,
		SalesCount:    overview.TotalSales,
		AverageOrder:  overview.AverageOrderValue,
		LowStockCount: lowStock,
	}
	for _, p := range top {
		summary.TopProducts = append(summary.TopProducts, llm.ProductLine{Name: p.Name, Quantity: p.Quantity, Revenue: p.Revenue})
	}
	bc.Sales = summary

	return bc, nil
}
