package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
)

type InventoryRepo interface {
	WithTx(tx *gorm.DB) InventoryRepo
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.InventoryItem, error)
	CountOwned(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error)
	List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryItem, int64, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) WithTx(tx *gorm.DB) InventoryRepo {
	return &inventoryRepo{db: tx}
}

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CountOwned counts how many of the distinct ids belong to the owner.
// On PostgreSQL the matched rows stay share-locked until the surrounding transaction ends.
func (r *inventoryRepo) CountOwned(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := r.db.WithContext(ctx).Model(&models.InventoryItem{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "SHARE"})
	}

	var found []uuid.UUID
	if err := query.Pluck("id", &found).Error; err != nil {
		return 0, err
	}
	return int64(len(found)), nil
}

func (r *inventoryRepo) List(ctx context.Context, filter models.InventoryFilter) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&models.InventoryItem{}).Where("owner_id = ?", filter.OwnerID)

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		query = query.Where("LOWER(item_name) LIKE ?", likePattern(term))
	}

	if filter.LowStock != nil {
		query = query.Where("stock_quantity <= ?", *filter.LowStock)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := normalizePage(&filter.Page, &filter.PageSize)
	err := query.Offset(offset).Limit(filter.PageSize).
		Order("item_name ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *inventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Model(item).
		Where("owner_id = ?", item.OwnerID).
		Select("item_name", "stock_quantity", "item_price", "custom_fields", "updated_at").
		Updates(item).Error
}

// Delete removes the item; gorm.ErrRecordNotFound when the owner has no such item
func (r *inventoryRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
