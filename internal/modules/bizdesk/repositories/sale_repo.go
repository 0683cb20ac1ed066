package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
)

type SaleRepo interface {
	WithTx(tx *gorm.DB) SaleRepo
	Create(ctx context.Context, sale *models.Sale) error
	CreateItems(ctx context.Context, items []models.SaleItem) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Sale, error)
	List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, int64, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepo {
	return &saleRepo{db: db}
}

// WithTx returns a repo bound to an open transaction
func (r *saleRepo) WithTx(tx *gorm.DB) SaleRepo {
	return &saleRepo{db: tx}
}

// Create inserts the header only; items go through CreateItems
func (r *saleRepo) Create(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(sale).Error
}

func (r *saleRepo) CreateItems(ctx context.Context, items []models.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *saleRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := r.withDetails(r.db.WithContext(ctx)).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&sale).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, int64, error) {
	var sales []models.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Sale{}).Where("owner_id = ?", filter.OwnerID)

	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", filter.To.UTC())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := normalizePage(&filter.Page, &filter.PageSize)
	err := r.withDetails(query).
		Offset(offset).Limit(filter.PageSize).
		Order("created_at DESC").
		Order("id ASC").
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

// Delete removes the sale's items and then the header in one transaction.
// gorm.ErrRecordNotFound when the owner has no such sale.
func (r *saleRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.Select("id").Where("owner_id = ? AND id = ?", ownerID, id).First(&sale).Error; err != nil {
			return err
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}

		return tx.Where("owner_id = ? AND id = ?", ownerID, sale.ID).Delete(&models.Sale{}).Error
	})
}

func (r *saleRepo) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("line_number ASC")
		})
}
