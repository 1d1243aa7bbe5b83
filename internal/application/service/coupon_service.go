package service

import (
	"context"
	"strings"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/google/uuid"
)

// CouponService manages the coupon catalog
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CouponInput represents the create/update coupon input
type CouponInput struct {
	Code        string
	Type        string
	Value       float64
	MinPurchase float64
	MaxDiscount float64
	StartDate   *time.Time
	EndDate     *time.Time
	Active      bool
}

func (in *CouponInput) validate() error {
	if strings.TrimSpace(in.Code) == "" {
		return apperror.NewFieldError("code", "required")
	}
	t := ticket.CouponType(in.Type)
	if t != ticket.CouponAmount && t != ticket.CouponPercent {
		return apperror.NewFieldError("type", "must be amount or percent")
	}
	if in.Value <= 0 {
		return apperror.NewFieldError("value", "must be greater than zero")
	}
	if t == ticket.CouponPercent && in.Value > 100 {
		return apperror.NewFieldError("value", "percentage cannot exceed 100")
	}
	if in.MinPurchase < 0 {
		return apperror.NewFieldError("min_purchase", "must not be negative")
	}
	if in.MaxDiscount < 0 {
		return apperror.NewFieldError("max_discount", "must not be negative")
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return apperror.NewFieldError("end_date", "ends before it starts")
	}
	return nil
}

// CreateCoupon creates a coupon; codes are unique case-insensitively
func (s *CouponService) CreateCoupon(ctx context.Context, input *CouponInput) (*entity.Coupon, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.couponRepo.FindActiveByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A coupon with this code already exists")
	}

	coupon := &entity.Coupon{
		Code:        input.Code,
		Type:        input.Type,
		Value:       input.Value,
		MinPurchase: input.MinPurchase,
		MaxDiscount: input.MaxDiscount,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Active:      input.Active,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// GetCoupon retrieves a coupon by ID
func (s *CouponService) GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NewNotFoundError("Coupon")
	}
	return coupon, nil
}

// ListCoupons returns all coupons
func (s *CouponService) ListCoupons(ctx context.Context) ([]entity.Coupon, error) {
	return s.couponRepo.List(ctx)
}

// UpdateCoupon replaces a coupon's fields
func (s *CouponService) UpdateCoupon(ctx context.Context, id uuid.UUID, input *CouponInput) (*entity.Coupon, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	coupon.Type = input.Type
	coupon.Value = input.Value
	coupon.MinPurchase = input.MinPurchase
	coupon.MaxDiscount = input.MaxDiscount
	coupon.StartDate = input.StartDate
	coupon.EndDate = input.EndDate
	coupon.Active = input.Active

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ToggleCoupon flips a coupon's active flag
func (s *CouponService) ToggleCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}
	coupon.Active = !coupon.Active
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// DeleteCoupon removes a coupon; closed orders keep the code they used
func (s *CouponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCoupon(ctx, id); err != nil {
		return err
	}
	return s.couponRepo.Delete(ctx, id)
}
