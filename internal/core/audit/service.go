package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrMissingOwner is returned when an entry or query is not scoped to an owner
var ErrMissingOwner = errors.New("audit log requires an owner")

type requestKey struct{}

// WithRequest attaches request metadata to ctx so services can record it without knowing about HTTP
func WithRequest(ctx context.Context, req Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// RequestFrom returns the metadata attached by WithRequest
func RequestFrom(ctx context.Context) Request {
	req, _ := ctx.Value(requestKey{}).(Request)
	return req
}

// Service provides audit logging functionality
type Service struct {
	db *gorm.DB
}

// NewService creates a new audit service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry *AuditLog) error {
	if entry.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// LogChange records a create, update or delete. Request metadata comes from ctx when the
// change does not carry its own.
func (s *Service) LogChange(ctx context.Context, change Change) error {
	oldJSON, err := toJSON(change.OldValue)
	if err != nil {
		log.Warn().Err(err).Str("entity", change.Entity).Msg("⚠️  Failed to serialize old value")
	}

	newJSON, err := toJSON(change.NewValue)
	if err != nil {
		log.Warn().Err(err).Str("entity", change.Entity).Msg("⚠️  Failed to serialize new value")
	}

	req := change.Request
	if req == (Request{}) {
		req = RequestFrom(ctx)
	}

	return s.Log(ctx, &AuditLog{
		OwnerID:   change.OwnerID,
		Action:    change.Action,
		Entity:    change.Entity,
		EntityID:  change.EntityID,
		OldValue:  oldJSON,
		NewValue:  newJSON,
		IPAddress: req.IPAddress,
		Method:    req.Method,
		Endpoint:  req.Endpoint,
	})
}

// Record is LogChange for callers that have already committed: failures are logged, not returned.
func (s *Service) Record(ctx context.Context, change Change) {
	if s == nil {
		return
	}
	if err := s.LogChange(ctx, change); err != nil {
		log.Error().Err(err).
			Str("owner_id", change.OwnerID.String()).
			Str("entity", change.Entity).
			Str("entity_id", change.EntityID).
			Msg("❌ Failed to write audit log")
	}
}

// GetLogs retrieves audit logs with filtering
func (s *Service) GetLogs(ctx context.Context, filter AuditFilter) (*AuditLogResponse, error) {
	if filter.OwnerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	query := s.db.WithContext(ctx).Model(&AuditLog{}).Where("owner_id = ?", filter.OwnerID)

	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		query = query.Where("entity = ?", filter.Entity)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", filter.EndDate.UTC())
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	offset := (filter.Page - 1) * filter.PageSize

	logs := make([]AuditLog, 0)
	if err := query.
		Order("created_at DESC").
		Order("id").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	return &AuditLogResponse{
		Logs:       logs,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetEntityHistory retrieves all changes for a specific entity, newest first
func (s *Service) GetEntityHistory(ctx context.Context, ownerID uuid.UUID, entity, entityID string) ([]AuditLog, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	var logs []AuditLog
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND entity = ? AND entity_id = ?", ownerID, entity, entityID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entity history: %w", err)
	}

	return logs, nil
}

func toJSON(value interface{}) (datatypes.JSON, error) {
	if value == nil {
		return nil, nil
	}

	bytes, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(bytes), nil
}
