package ticket

import (
	"context"
	"time"
)

// CouponType distinguishes flat-amount coupons from percentage coupons
type CouponType string

const (
	CouponAmount  CouponType = "amount"
	CouponPercent CouponType = "percent"
)

// Coupon is the promo view the pricing engine works with
type Coupon struct {
	Code        string     `json:"code"`
	Type        CouponType `json:"type"`
	Value       float64    `json:"value"`
	MinPurchase float64    `json:"min_purchase"`
	MaxDiscount float64    `json:"max_discount"` // 0 = unlimited
	StartDate   time.Time  `json:"start_date"`   // zero = unbounded
	EndDate     time.Time  `json:"end_date"`     // zero = unbounded
	Active      bool       `json:"active"`
}

// InWindow reports whether the coupon's date window covers day (inclusive
// on both ends, zero dates unbounded)
func (c *Coupon) InWindow(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	if !c.StartDate.IsZero() && d.Before(c.StartDate.Truncate(24*time.Hour)) {
		return false
	}
	if !c.EndDate.IsZero() && d.After(c.EndDate.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

// CouponLookup resolves an active coupon by uppercased code. A nil coupon
// with nil error means no match.
type CouponLookup interface {
	FindActive(ctx context.Context, code string) (*Coupon, error)
}

// CouponLookupFunc adapts a function to the CouponLookup interface
type CouponLookupFunc func(ctx context.Context, code string) (*Coupon, error)

// FindActive calls the wrapped function
func (f CouponLookupFunc) FindActive(ctx context.Context, code string) (*Coupon, error) {
	return f(ctx, code)
}
