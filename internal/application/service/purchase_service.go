package service

import (
	"context"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/google/uuid"
)

// PurchaseService manages supplier purchases
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, supplierRepo repository.SupplierRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
	}
}

// PurchaseInput represents the create/update purchase input
type PurchaseInput struct {
	SupplierID *uuid.UUID
	Concept    string
	Amount     float64
	Date       time.Time
	Status     enum.ExpenseStatus
}

func (s *PurchaseService) validate(ctx context.Context, input *PurchaseInput) error {
	if input.Concept == "" {
		return apperror.NewFieldError("concept", "required")
	}
	if input.Amount <= 0 {
		return apperror.NewFieldError("amount", "must be greater than zero")
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return apperror.NewNotFoundError("Supplier")
		}
	}
	return nil
}

// CreatePurchase records a supplier purchase
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *PurchaseInput) (*entity.Purchase, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	status := input.Status
	if !status.IsValid() {
		status = enum.ExpenseExecuted
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &entity.Purchase{
		SupplierID: input.SupplierID,
		Concept:    input.Concept,
		Amount:     money.Round2(input.Amount),
		Date:       date,
		Status:     status,
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases with pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// UpdatePurchase replaces a purchase's fields
func (s *PurchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, input *PurchaseInput) (*entity.Purchase, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}
	purchase, err := s.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	purchase.SupplierID = input.SupplierID
	purchase.Concept = input.Concept
	purchase.Amount = money.Round2(input.Amount)
	if !input.Date.IsZero() {
		purchase.Date = input.Date
	}
	if input.Status.IsValid() {
		purchase.Status = input.Status
	}

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// DeletePurchase removes a purchase
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPurchase(ctx, id); err != nil {
		return err
	}
	return s.purchaseRepo.Delete(ctx, id)
}

// SupplierService manages the supplier directory
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the create/update supplier input
type SupplierInput struct {
	Name    string
	Contact string
	Phone   string
	Notes   string
}

// CreateSupplier adds a supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *SupplierInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "required")
	}
	supplier := &entity.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
		Phone:   input.Phone,
		Notes:   input.Notes,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// UpdateSupplier replaces a supplier's fields
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "required")
	}
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.Contact = input.Contact
	supplier.Phone = input.Phone
	supplier.Notes = input.Notes

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier; purchases keep a nulled reference
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSupplier(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}
