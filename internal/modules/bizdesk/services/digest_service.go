package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/utils"
)

// DigestEntry is one owner's sales for the day
type DigestEntry struct {
	OwnerID      uuid.UUID
	BusinessName string
	Date         string
	Overview     models.AnalyticsOverview
}

// DigestService logs each owner's daily sales summary; it runs from the scheduler
type DigestService struct {
	authService      *auth.Service
	analyticsService *AnalyticsService
}

func NewDigestService(authService *auth.Service, analyticsService *AnalyticsService) *DigestService {
	return &DigestService{
		authService:      authService,
		analyticsService: analyticsService,
	}
}

// Run computes today's overview for every owner. A failing owner is logged and skipped.
func (s *DigestService) Run(ctx context.Context) ([]DigestEntry, error) {
	owners, err := s.authService.ListOwners(ctx)
	if err != nil {
		log.Error().Err(err).Msg("❌ Daily digest: failed to list owners")
		return nil, err
	}

	now := s.analyticsService.now().In(s.analyticsService.Location())
	window := analytics.GetDayRange(now).UTC()
	date := now.Format("2006-01-02")

	entries := make([]DigestEntry, 0, len(owners))
	for i := range owners {
		owner := &owners[i]

		overview, err := s.analyticsService.Overview(ctx, owner.ID, window)
		if err != nil {
			log.Error().Err(err).Str("owner_id", owner.ID.String()).Msg("❌ Daily digest failed for owner")
			continue
		}

		entries = append(entries, DigestEntry{
			OwnerID:      owner.ID,
			BusinessName: owner.DisplayName(),
			Date:         date,
			Overview:     overview,
		})

		log.Info().
			Str("owner_id", owner.ID.String()).
			Str("business", owner.DisplayName()).
			Str("date", date).
			Int64("sales", overview.TotalSales).
			Float64("revenue", overview.TotalRevenue).
			Float64("profit", overview.TotalProfit).
			Msg("📊 Daily digest")
	}

	return entries, nil
}

// Job adapts Run to the scheduler's func() signature
func (s *DigestService) Job() func() {
	return func() {
		if _, err := s.Run(context.Background()); err != nil {
			utils.LogError("❌ Daily digest run failed", err, nil)
		}
	}
}
