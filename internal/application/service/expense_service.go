package service

import (
	"context"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/google/uuid"
)

// ExpenseService manages outgoing money records
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput represents the create/update expense input
type ExpenseInput struct {
	Name        string
	Description string
	Category    string
	Amount      float64
	Date        time.Time
	Status      enum.ExpenseStatus
}

func (in *ExpenseInput) validate() error {
	if in.Name == "" {
		return apperror.NewFieldError("name", "required")
	}
	if in.Amount <= 0 {
		return apperror.NewFieldError("amount", "must be greater than zero")
	}
	return nil
}

// CreateExpense records a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	if err := input.validate(); err != nil {
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

	expense := &entity.Expense{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Amount:      money.Round2(input.Amount),
		Date:        date,
		Status:      status,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses returns expenses matching the filters
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, error) {
	return s.expenseRepo.List(ctx, params)
}

// UpdateExpense replaces an expense's fields
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	expense.Name = input.Name
	expense.Description = input.Description
	expense.Category = input.Category
	expense.Amount = money.Round2(input.Amount)
	if !input.Date.IsZero() {
		expense.Date = input.Date
	}
	if input.Status.IsValid() {
		expense.Status = input.Status
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetExpense(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
