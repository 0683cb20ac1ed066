package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/repositories"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/database"
)

// CustomerInput identifies the buyer of a sale
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

type CustomerService struct {
	customerRepo repositories.CustomerRepo
	auditSvc     *audit.Service
}

func NewCustomerService(customerRepo repositories.CustomerRepo, auditSvc *audit.Service) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		auditSvc:     auditSvc,
	}
}

// ResolveOrCreate finds the owner's customer by email, then by name, or inserts a new one.
// Supplied email/phone overwrite stored values; omitted ones never clear them.
// It runs on tx so the lookup and write commit or roll back with the caller's sale.
func (s *CustomerService) ResolveOrCreate(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, in CustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if name == "" {
		return nil, apperror.Validation("Customer name is required")
	}

	// Serialises concurrent first sales for the same new customer on PostgreSQL
	for _, key := range customerLockKeys(ownerID, name, email) {
		if err := database.LockKey(tx.WithContext(ctx), key); err != nil {
			return nil, err
		}
	}

	repo := s.customerRepo.WithTx(tx)

	customer, err := s.lookup(ctx, repo, ownerID, name, email)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		customer = &models.Customer{
			OwnerID: ownerID,
			Name:    name,
			Email:   email,
			Phone:   phone,
		}
		if err := repo.Create(ctx, customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	changed := false
	if email != "" && email != customer.Email {
		customer.Email = email
		changed = true
	}
	if phone != "" && phone != customer.Phone {
		customer.Phone = phone
		changed = true
	}

	if changed {
		if err := repo.Update(ctx, customer); err != nil {
			return nil, err
		}
	}

	return customer, nil
}

// customerLockKeys covers both lookup paths. Keys come back sorted so every
// transaction acquires them in the same order.
func customerLockKeys(ownerID uuid.UUID, name, email string) []string {
	prefix := "customer:" + ownerID.String()
	keys := []string{prefix + ":name:" + strings.ToLower(name)}
	if email != "" {
		keys = append(keys, prefix+":email:"+strings.ToLower(email))
	}
	sort.Strings(keys)
	return keys
}

func (s *CustomerService) lookup(ctx context.Context, repo repositories.CustomerRepo, ownerID uuid.UUID, name, email string) (*models.Customer, error) {
	if email != "" {
		customer, err := repo.FindByEmail(ctx, ownerID, email)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	customer, err := repo.FindByName(ctx, ownerID, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return customer, err
}

// CreateCustomer creates a customer directly
func (s *CustomerService) CreateCustomer(ctx context.Context, ownerID uuid.UUID, req *models.CreateCustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("Customer name is required")
	}

	customer := &models.Customer{
		OwnerID:   ownerID,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		GSTNumber: strings.TrimSpace(req.GSTNumber),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.Persistence("Failed to create customer", err)
	}

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionCreate,
		Entity:   "customer",
		EntityID: customer.ID.String(),
		NewValue: customer,
	})

	return customer, nil
}

// GetCustomer retrieves one of the owner's customers
func (s *CustomerService) GetCustomer(ctx context.Context, ownerID, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("customer")
		}
		return nil, apperror.Persistence("Failed to get customer", err)
	}
	return customer, nil
}

// ListCustomers lists the owner's customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, filter models.CustomerFilter) (*models.CustomerListResponse, error) {
	customers, total, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Persistence("Failed to list customers", err)
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	page, pageSize := pageBounds(filter.Page, filter.PageSize)
	return &models.CustomerListResponse{
		Customers:  customers,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UpdateCustomer applies a partial update
func (s *CustomerService) UpdateCustomer(ctx context.Context, ownerID, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	before := *customer

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.Validation("Customer name cannot be empty")
		}
		customer.Name = name
	}
	if req.Email != nil {
		customer.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		customer.Address = strings.TrimSpace(*req.Address)
	}
	if req.GSTNumber != nil {
		customer.GSTNumber = strings.TrimSpace(*req.GSTNumber)
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.Persistence("Failed to update customer", err)
	}

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionUpdate,
		Entity:   "customer",
		EntityID: customer.ID.String(),
		OldValue: before,
		NewValue: customer,
	})

	return customer, nil
}

// DeleteCustomer removes a customer that has no sales
func (s *CustomerService) DeleteCustomer(ctx context.Context, ownerID, id uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, ownerID, id)
	if err != nil {
		return err
	}

	salesCount, err := s.customerRepo.CountSales(ctx, ownerID, id)
	if err != nil {
		return apperror.Persistence("Failed to delete customer", err)
	}
	if salesCount > 0 {
		return apperror.Validation("Customer has %d sale(s) and cannot be deleted", salesCount)
	}

	if err := s.customerRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("customer")
		}
		return apperror.Persistence("Failed to delete customer", err)
	}

	log.Info().Str("owner_id", ownerID.String()).Str("customer_id", id.String()).Msg("✅ Customer deleted")

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionDelete,
		Entity:   "customer",
		EntityID: id.String(),
		OldValue: customer,
	})

	return nil
}
