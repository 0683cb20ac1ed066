package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new auth repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOwnerByID retrieves an owner by ID
func (r *Repository) GetOwnerByID(ctx context.Context, id uuid.UUID) (*Owner, error) {
	var owner Owner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// ListOwners returns every owner, oldest first
func (r *Repository) ListOwners(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&owners).Error
	return owners, err
}
