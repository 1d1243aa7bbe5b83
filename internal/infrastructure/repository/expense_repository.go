package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range expenses {
			if err := tx.Create(&expenses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, error) {
	var expenses []entity.Expense

	query := r.db.WithContext(ctx).Model(&entity.Expense{})

	if params.From != nil {
		query = query.Where("date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("date <= ?", *params.To)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	err := query.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&expenses).Error
	return expenses, err
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).Preload("Supplier").First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Supplier").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC").
		Find(&purchases).Error

	return purchases, total, err
}

func (r *purchaseRepository) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&purchases).Error
	return purchases, err
}
