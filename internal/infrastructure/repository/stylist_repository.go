package repository

import (
	"context"
	"errors"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stylistRepository struct {
	db *gorm.DB
}

// NewStylistRepository creates a new stylist repository
func NewStylistRepository(db *gorm.DB) domainRepo.StylistRepository {
	return &stylistRepository{db: db}
}

func (r *stylistRepository) Create(ctx context.Context, stylist *entity.Stylist) error {
	return r.db.WithContext(ctx).Create(stylist).Error
}

func (r *stylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Stylist, error) {
	var stylist entity.Stylist
	err := r.db.WithContext(ctx).First(&stylist, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stylist, err
}

func (r *stylistRepository) Update(ctx context.Context, stylist *entity.Stylist) error {
	return r.db.WithContext(ctx).Save(stylist).Error
}

func (r *stylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Stylist{}, "id = ?", id).Error
}

func (r *stylistRepository) List(ctx context.Context) ([]entity.Stylist, error) {
	var stylists []entity.Stylist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&stylists).Error
	return stylists, err
}

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) domainRepo.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) Create(ctx context.Context, cashier *entity.Cashier) error {
	return r.db.WithContext(ctx).Create(cashier).Error
}

func (r *cashierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) GetByUsername(ctx context.Context, username string) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) List(ctx context.Context) ([]entity.Cashier, error) {
	var cashiers []entity.Cashier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cashiers).Error
	return cashiers, err
}
