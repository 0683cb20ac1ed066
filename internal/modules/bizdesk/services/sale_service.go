package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/repositories"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/database"
)

// maxInvoiceAttempts bounds retries after an invoice number collision
const maxInvoiceAttempts = 3

type SaleService struct {
	db              *gorm.DB
	saleRepo        repositories.SaleRepo
	inventoryRepo   repositories.InventoryRepo
	customerService *CustomerService
	invoices        *InvoiceGenerator
	auditSvc        *audit.Service
	now             func() time.Time
}

func NewSaleService(
	db *gorm.DB,
	saleRepo repositories.SaleRepo,
	inventoryRepo repositories.InventoryRepo,
	customerService *CustomerService,
	invoices *InvoiceGenerator,
	auditSvc *audit.Service,
) *SaleService {
	if invoices == nil {
		invoices = NewInvoiceGenerator()
	}
	return &SaleService{
		db:              db,
		saleRepo:        saleRepo,
		inventoryRepo:   inventoryRepo,
		customerService: customerService,
		invoices:        invoices,
		auditSvc:        auditSvc,
		now:             time.Now,
	}
}

// SetClock overrides the sale timestamp source
func (s *SaleService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateSale resolves the customer, then writes the header and every line item in one transaction.
// Storage failures all surface as apperror.ErrSaleCreation.
func (s *SaleService) CreateSale(ctx context.Context, ownerID uuid.UUID, req *models.CreateSaleRequest) (*models.SaleView, error) {
	if ownerID == uuid.Nil {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if err := validateSaleRequest(req); err != nil {
		return nil, err
	}
	totals := ComputeTotals(req.Products, req.Discount)

	var sale *models.Sale
	var err error
	for attempt := 1; attempt <= maxInvoiceAttempts; attempt++ {
		sale, err = s.createOnce(ctx, ownerID, req, totals)
		if err == nil {
			break
		}
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		if !database.IsUniqueViolation(err) || attempt == maxInvoiceAttempts {
			log.Error().Err(err).
				Str("owner_id", ownerID.String()).
				Int("attempt", attempt).
				Msg("❌ Failed to create sale")
			return nil, apperror.SaleCreation(err)
		}
		log.Warn().
			Str("owner_id", ownerID.String()).
			Int("attempt", attempt).
			Msg("⚠️  Invoice number collision, retrying")
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("sale_id", sale.ID.String()).
		Str("invoice", sale.InvoiceNumber).
		Float64("total", sale.TotalAmount).
		Int("items", len(sale.Items)).
		Msg("✅ Sale created")

	view := models.NewSaleView(sale)

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionCreate,
		Entity:   "sale",
		EntityID: sale.ID.String(),
		NewValue: view,
	})

	return &view, nil
}

func (s *SaleService) createOnce(ctx context.Context, ownerID uuid.UUID, req *models.CreateSaleRequest, totals SaleTotals) (*models.Sale, error) {
	var sale *models.Sale

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkInventoryRefs(ctx, tx, ownerID, req.Products); err != nil {
			return err
		}

		customer, err := s.customerService.ResolveOrCreate(ctx, tx, ownerID, CustomerInput{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		})
		if err != nil {
			return err
		}

		sale = &models.Sale{
			InvoiceNumber:  s.invoices.Next(),
			CustomerID:     customer.ID,
			OwnerID:        ownerID,
			SubtotalAmount: totals.Subtotal.InexactFloat64(),
			DiscountAmount: totals.Discount.InexactFloat64(),
			TotalAmount:    totals.Total.InexactFloat64(),
			ProfitAmount:   totals.Profit.InexactFloat64(),
			PaymentMethod:  withDefault(req.PaymentMethod, models.DefaultPaymentMethod),
			PaymentStatus:  withDefault(req.PaymentStatus, models.DefaultPaymentStatus),
			Notes:          strings.TrimSpace(req.Notes),
			CreatedAt:      s.now().UTC(),
		}

		repo := s.saleRepo.WithTx(tx)
		if err := repo.Create(ctx, sale); err != nil {
			return err
		}

		items := make([]models.SaleItem, len(req.Products))
		for i, p := range req.Products {
			items[i] = models.SaleItem{
				SaleID:          sale.ID,
				LineNumber:      i + 1,
				ProductName:     strings.TrimSpace(p.Name),
				Quantity:        p.Qty,
				UnitPrice:       roundMoney(p.Price),
				TotalPrice:      totals.Lines[i].InexactFloat64(),
				InventoryItemID: p.InventoryItemID,
			}
		}
		if err := repo.CreateItems(ctx, items); err != nil {
			return err
		}

		sale.Customer = customer
		sale.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

func validateSaleRequest(req *models.CreateSaleRequest) error {
	if req == nil {
		return apperror.Validation("Request body is required")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperror.Validation("Customer name is required")
	}
	if len(req.Products) == 0 {
		return apperror.Validation("At least one product is required")
	}
	for i, p := range req.Products {
		if strings.TrimSpace(p.Name) == "" {
			return apperror.Validation("Product %d: name is required", i+1)
		}
		if p.Qty <= 0 {
			return apperror.Validation("Product %d: qty must be greater than 0", i+1)
		}
		if p.Price <= 0 {
			return apperror.Validation("Product %d: price must be greater than 0", i+1)
		}
		if hasSubCents(p.Price) {
			return apperror.Validation("Product %d: price cannot have more than 2 decimal places", i+1)
		}
	}
	if req.Discount != nil {
		if *req.Discount < 0 {
			return apperror.Validation("Discount cannot be negative")
		}
		if hasSubCents(*req.Discount) {
			return apperror.Validation("Discount cannot have more than 2 decimal places")
		}
	}
	return nil
}

// checkInventoryRefs makes sure every referenced inventory item belongs to the owner.
// It runs on the sale's tx so the references hold until commit.
func (s *SaleService) checkInventoryRefs(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, products []models.SaleProductInput) error {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, p := range products {
		if p.InventoryItemID == nil {
			continue
		}
		if _, ok := seen[*p.InventoryItemID]; ok {
			continue
		}
		seen[*p.InventoryItemID] = struct{}{}
		ids = append(ids, *p.InventoryItemID)
	}
	if len(ids) == 0 {
		return nil
	}

	count, err := s.inventoryRepo.WithTx(tx).CountOwned(ctx, ownerID, ids)
	if err != nil {
		return fmt.Errorf("inventory lookup failed: %w", err)
	}
	if count != int64(len(ids)) {
		return apperror.NotFound("inventory item")
	}
	return nil
}

// GetSale retrieves one of the owner's sales
func (s *SaleService) GetSale(ctx context.Context, ownerID, id uuid.UUID) (*models.SaleView, error) {
	sale, err := s.saleRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("sale")
		}
		return nil, apperror.Persistence("Failed to get sale", err)
	}

	view := models.NewSaleView(sale)
	return &view, nil
}

// ListSales lists the owner's sales, newest first
func (s *SaleService) ListSales(ctx context.Context, filter models.SaleFilter) (*models.SaleListResponse, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, apperror.Validation("from must be before to")
	}

	sales, total, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Persistence("Failed to list sales", err)
	}

	views := make([]models.SaleView, 0, len(sales))
	for i := range sales {
		views = append(views, models.NewSaleView(&sales[i]))
	}

	page, pageSize := pageBounds(filter.Page, filter.PageSize)
	return &models.SaleListResponse{
		Sales:      views,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// DeleteSale removes a sale and all of its line items
func (s *SaleService) DeleteSale(ctx context.Context, ownerID, id uuid.UUID) error {
	existing, err := s.GetSale(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.saleRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("sale")
		}
		return apperror.Persistence("Failed to delete sale", err)
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("sale_id", id.String()).
		Str("invoice", existing.BillNo).
		Msg("✅ Sale deleted")

	s.auditSvc.Record(ctx, audit.Change{
		OwnerID:  ownerID,
		Action:   audit.ActionDelete,
		Entity:   "sale",
		EntityID: id.String(),
		OldValue: existing,
	})

	return nil
}

func withDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
