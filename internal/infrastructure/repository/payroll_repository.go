package repository

import (
	"context"
	"errors"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) domainRepo.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, entry *entity.PayrollEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *payrollRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error) {
	var entry entity.PayrollEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *payrollRepository) Update(ctx context.Context, entry *entity.PayrollEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *payrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PayrollEntry{}, "id = ?", id).Error
}

func (r *payrollRepository) List(ctx context.Context, params *domainRepo.PayrollFilterParams) ([]entity.PayrollEntry, error) {
	var entries []entity.PayrollEntry

	query := r.db.WithContext(ctx).Model(&entity.PayrollEntry{})

	if params.From != nil {
		query = query.Where("date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("date <= ?", *params.To)
	}
	if params.StylistID != nil {
		query = query.Where("stylist_id = ?", *params.StylistID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		query = query.Where("concept ILIKE ? OR notes ILIKE ? OR method ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	err := query.Order("date DESC").Find(&entries).Error
	return entries, err
}
