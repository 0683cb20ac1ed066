package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
)

type CustomerRepo interface {
	WithTx(tx *gorm.DB) CustomerRepo
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Customer, error)
	FindByEmail(ctx context.Context, ownerID uuid.UUID, email string) (*models.Customer, error)
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Customer, error)
	List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, int64, error)
	CountSales(ctx context.Context, ownerID, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepo {
	return &customerRepo{db: db}
}

// WithTx returns a repo bound to an open transaction
func (r *customerRepo) WithTx(tx *gorm.DB) CustomerRepo {
	return &customerRepo{db: tx}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Model(customer).
		Where("owner_id = ?", customer.OwnerID).
		Select("name", "email", "phone", "address", "gst_number", "updated_at").
		Updates(customer).Error
}

func (r *customerRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByEmail returns the oldest customer with this email; gorm.ErrRecordNotFound when none
func (r *customerRepo) FindByEmail(ctx context.Context, ownerID uuid.UUID, email string) (*models.Customer, error) {
	return r.findOldest(ctx, "owner_id = ? AND email = ?", ownerID, email)
}

// FindByName returns the oldest customer with this exact name; gorm.ErrRecordNotFound when none
func (r *customerRepo) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Customer, error) {
	return r.findOldest(ctx, "owner_id = ? AND name = ?", ownerID, name)
}

func (r *customerRepo) findOldest(ctx context.Context, where string, args ...interface{}) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where(where, args...).
		Order("created_at ASC").
		Order("id ASC").
		Take(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) List(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Customer{}).Where("owner_id = ?", filter.OwnerID)

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := likePattern(term)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := normalizePage(&filter.Page, &filter.PageSize)
	err := query.Offset(offset).Limit(filter.PageSize).
		Order("LOWER(name) ASC").
		Order("id ASC").
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r *customerRepo) CountSales(ctx context.Context, ownerID, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("owner_id = ? AND customer_id = ?", ownerID, id).
		Count(&count).Error
	return count, err
}

// Delete removes the customer; gorm.ErrRecordNotFound when the owner has no such customer
func (r *customerRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
