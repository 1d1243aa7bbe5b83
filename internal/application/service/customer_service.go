package service

import (
	"context"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// CreateCustomer creates a new customer. Phone numbers are unique; a
// duplicate is rejected instead of silently merged.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "required")
	}
	if input.Phone != "" {
		existing, err := s.customerRepo.GetByPhone(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this phone already exists")
		}
	}

	customer := &entity.Customer{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
		Notes: input.Notes,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name  *string
	Phone *string
	Email *string
	Notes *string
}

// UpdateCustomer applies a partial update to a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewFieldError("name", "required")
		}
		customer.Name = *input.Name
	}
	if input.Phone != nil && *input.Phone != customer.Phone {
		if *input.Phone != "" {
			existing, err := s.customerRepo.GetByPhone(ctx, *input.Phone)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, apperror.NewConflictError("A customer with this phone already exists")
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// AdjustPoints applies a manual correction to a customer's loyalty
// balance; the result is floored at zero
func (s *CustomerService) AdjustPoints(ctx context.Context, id uuid.UUID, delta float64) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Points = money.Round2(customer.Points + delta)
	if customer.Points < 0 {
		customer.Points = 0
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
