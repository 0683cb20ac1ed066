package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/repositories"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

type InventoryService struct {
	inventoryRepo repositories.InventoryRepo
	auditSvc      *audit.Service
}

func NewInventoryService(inventoryRepo repositories.InventoryRepo, auditSvc *audit.Service) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		auditSvc:      auditSvc,
	}
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, ownerID uuid.UUID, req *models.CreateInventoryRequest) (*models.InventoryItem, error) {
	name := strings.TrimSpace(req.ItemName)
	if name == "" {
		return nil, apperror.Validation("Item name is required")
	}
	if req.StockQuantity < 0 {
		return nil, apperror.Validation("Stock quantity cannot be negative")
	}
	if req.ItemPrice < 0 {
		return nil, apperror.Validation("Item price cannot be negative")
	}

	fields := req.CustomFields
	if fields == nil {
		fields = map[string]string{}
	}

	item := &models.InventoryItem{
		OwnerID:       ownerID,
		ItemName:      name,
		StockQuantity: req.StockQuantity,
		ItemPrice:     roundMoney(req.ItemPrice),
		CustomFields:  datatypes.NewJSONType(fields),
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, apperror.Persistence("Failed to create inventory item", err)
	}

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionCreate,
		Entity:   "inventory_item",
		EntityID: item.ID.String(),
		NewValue: item,
	})

	return item, nil
}

// GetItem retrieves one of the owner's items
func (s *InventoryService) GetItem(ctx context.Context, ownerID, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("inventory item")
		}
		return nil, apperror.Persistence("Failed to get inventory item", err)
	}
	return item, nil
}

// ListItems lists the owner's items with search, low-stock filter and pagination
func (s *InventoryService) ListItems(ctx context.Context, filter models.InventoryFilter) (*models.InventoryListResponse, error) {
	if filter.LowStock != nil && *filter.LowStock < 0 {
		return nil, apperror.Validation("lowStock cannot be negative")
	}

	items, total, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Persistence("Failed to list inventory", err)
	}
	if items == nil {
		items = []models.InventoryItem{}
	}

	page, pageSize := pageBounds(filter.Page, filter.PageSize)
	return &models.InventoryListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Snapshot returns up to limit items for prompt context
func (s *InventoryService) Snapshot(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.InventoryItem, error) {
	items, _, err := s.inventoryRepo.List(ctx, models.InventoryFilter{OwnerID: ownerID, Page: 1, PageSize: limit})
	return items, err
}

// UpdateItem applies a partial update
func (s *InventoryService) UpdateItem(ctx context.Context, ownerID, id uuid.UUID, req *models.UpdateInventoryRequest) (*models.InventoryItem, error) {
	item, err := s.GetItem(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	before := *item

	if req.ItemName != nil {
		name := strings.TrimSpace(*req.ItemName)
		if name == "" {
			return nil, apperror.Validation("Item name cannot be empty")
		}
		item.ItemName = name
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, apperror.Validation("Stock quantity cannot be negative")
		}
		item.StockQuantity = *req.StockQuantity
	}
	if req.ItemPrice != nil {
		if *req.ItemPrice < 0 {
			return nil, apperror.Validation("Item price cannot be negative")
		}
		item.ItemPrice = roundMoney(*req.ItemPrice)
	}
	if req.CustomFields != nil {
		fields := *req.CustomFields
		if fields == nil {
			fields = map[string]string{}
		}
		item.CustomFields = datatypes.NewJSONType(fields)
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, apperror.Persistence("Failed to update inventory item", err)
	}

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionUpdate,
		Entity:   "inventory_item",
		EntityID: item.ID.String(),
		OldValue: before,
		NewValue: item,
	})

	return item, nil
}

// DeleteItem removes an inventory item. Past sale lines keep their reference as history.
func (s *InventoryService) DeleteItem(ctx context.Context, ownerID, id uuid.UUID) error {
	item, err := s.GetItem(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.inventoryRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("inventory item")
		}
		return apperror.Persistence("Failed to delete inventory item", err)
	}

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionDelete,
		Entity:   "inventory_item",
		EntityID: id.String(),
		OldValue: item,
	})

	return nil
}
