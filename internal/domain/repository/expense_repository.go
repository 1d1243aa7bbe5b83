package repository

import (
	"context"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/google/uuid"
)

// ExpenseFilterParams carries the expense listing filters
type ExpenseFilterParams struct {
	From   *time.Time
	To     *time.Time
	Search string
}

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	CreateBatch(ctx context.Context, expenses []entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]entity.Expense, error)
}
