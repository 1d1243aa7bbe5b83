package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	domainRepo "github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) domainRepo.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ? AND active = true", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Coupon{}, "id = ?", id).Error
}

func (r *couponRepository) List(ctx context.Context) ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.db.WithContext(ctx).Order("code ASC").Find(&coupons).Error
	return coupons, err
}
