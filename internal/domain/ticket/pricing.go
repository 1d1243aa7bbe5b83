package ticket

import (
	"context"
	"log"
	"time"

	"github.com/DonIsaac10/Sistema-POS/pkg/money"
)

// Config carries the settings the pricing engine depends on
type Config struct {
	IVARate       float64 // tax-inclusive rate
	LoyaltyRate   float64
	CommissionCap float64 // max per-stylist commission %
}

// Totals is the single pricing result both the client display and
// settlement consume, guaranteeing what is shown is what is charged.
type Totals struct {
	Subtotal           float64      `json:"subtotal"`
	CouponCut          float64      `json:"coupon_cut"`
	CouponValid        bool         `json:"coupon_valid"`
	PointsUse          float64      `json:"points_use"`
	PointsEarned       float64      `json:"points_earned"`
	TipTotal           float64      `json:"tip_total"`
	IVA                float64      `json:"iva"`
	IVARate            float64      `json:"iva_rate"`
	Total              float64      `json:"total"`
	CommissionTotal    float64      `json:"commission_total"`
	GlobalDiscount     float64      `json:"global_discount"`
	GlobalDiscountType DiscountType `json:"global_discount_type"`
	TipBlocked         bool         `json:"tip_blocked"`
}

// ComputeTotals prices the cart. It is pure with respect to its inputs
// except for the two side effects the contract assigns to it: the matched
// coupon record is attached to the cart for settlement, and the customer
// points in use are clamped down to the currently affordable maximum.
func ComputeTotals(ctx context.Context, cart *Cart, cfg Config, coupons CouponLookup) Totals {
	cart.normalize()

	// Line totals and per-line commission
	var subtotal, commissionTotal float64
	hasLineDiscount := false
	for i := range cart.Lines {
		l := &cart.Lines[i]
		if l.Discount > 0 {
			hasLineDiscount = true
		}
		subtotal += money.Round2(l.Total())
		commissionTotal += l.Commission(cfg.CommissionCap)
	}

	// Coupon resolution: fail-open, an unresolvable or invalid coupon
	// yields zero discount instead of blocking the sale
	var couponCut float64
	couponValid := false
	cart.AppliedCoupon = nil
	if cart.CouponCode != "" {
		c, err := coupons.FindActive(ctx, cart.CouponCode)
		if err != nil {
			log.Printf("coupon lookup %q: %v", cart.CouponCode, err)
		} else if c != nil && c.Active {
			preBase := subtotal - cart.PointsUsed
			if preBase < 0 {
				preBase = 0
			}
			if c.InWindow(time.Now()) && preBase >= c.MinPurchase {
				var cut float64
				if c.Type == CouponPercent {
					cut = preBase * (c.Value / 100)
					if c.MaxDiscount > 0 && cut > c.MaxDiscount {
						cut = c.MaxDiscount
					}
				} else {
					cut = c.Value
				}
				if cut > preBase {
					cut = preBase
				}
				couponCut = money.Round2(cut)
				couponValid = true
				cart.AppliedCoupon = c
			}
		}
	}

	// Loyalty accrual does not stack with other discounts: any coupon code
	// on the ticket or any line discount forces the accrual base to zero
	accrueBase := subtotal
	if cart.CouponCode != "" || hasLineDiscount {
		accrueBase = 0
	}
	pointsEarned := money.Round2(accrueBase * cfg.LoyaltyRate)

	// Points redemption clamped to what the ticket can still absorb
	maxPoints := subtotal - couponCut
	if maxPoints < 0 {
		maxPoints = 0
	}
	if cart.Customer == nil {
		maxPoints = 0
	} else if cart.Customer.Points < maxPoints {
		maxPoints = cart.Customer.Points
	}
	if cart.PointsUsed > maxPoints {
		cart.PointsUsed = maxPoints
	}
	if cart.PointsUsed < 0 {
		cart.PointsUsed = 0
	}
	pointsUse := cart.PointsUsed

	// Tips need an assignable recipient: without a globally selected
	// stylist the tip total is forced to zero and the ticket flagged
	tipTotal := cart.TipTotal()
	tipBlocked := false
	if len(cart.StylistsGlobal) == 0 {
		tipTotal = 0
		tipBlocked = true
	}

	// Tax base after coupon, points and the optional global discount
	taxBase := subtotal - couponCut - pointsUse
	if taxBase < 0 {
		taxBase = 0
	}
	if cart.GlobalDiscount > 0 {
		if cart.GlobalDiscountType == DiscountPercent {
			taxBase -= taxBase * (cart.GlobalDiscount / 100)
		} else {
			taxBase -= cart.GlobalDiscount
		}
		if taxBase < 0 {
			taxBase = 0
		}
	}

	// Prices include IVA: the tax is extracted from the tax-inclusive
	// base, not added on top
	netBase := taxBase / (1 + cfg.IVARate)
	iva := money.Round2(taxBase - netBase)

	// Tips are a pass-through, never taxed
	total := money.Round2(taxBase + tipTotal)

	return Totals{
		Subtotal:           money.Round2(subtotal),
		CouponCut:          couponCut,
		CouponValid:        couponValid,
		PointsUse:          pointsUse,
		PointsEarned:       pointsEarned,
		TipTotal:           money.Round2(tipTotal),
		IVA:                iva,
		IVARate:            cfg.IVARate,
		Total:              total,
		CommissionTotal:    money.Round2(commissionTotal),
		GlobalDiscount:     cart.GlobalDiscount,
		GlobalDiscountType: cart.GlobalDiscountType,
		TipBlocked:         tipBlocked,
	}
}
