package ticket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testCfg = Config{IVARate: 0.16, LoyaltyRate: 0.02, CommissionCap: 20}

func noCoupons() CouponLookup {
	return CouponLookupFunc(func(ctx context.Context, code string) (*Coupon, error) {
		return nil, nil
	})
}

func fixedCoupon(c *Coupon) CouponLookup {
	return CouponLookupFunc(func(ctx context.Context, code string) (*Coupon, error) {
		if c != nil && c.Code == code {
			return c, nil
		}
		return nil, nil
	})
}

func cartWithLine(price float64, qty int) *Cart {
	cart := NewCart()
	cart.AddLine(Line{
		Variant: VariantRef{ID: uuid.New(), Name: "Corte", Price: price},
		Qty:     qty,
	})
	return cart
}

func TestLineTotalNeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		qty      int
		discount float64
		adjust   *Adjust
		want     float64
	}{
		{"plain", 250, 2, 0, nil, 500},
		{"discount", 250, 2, 100, nil, 400},
		{"oversized discount", 250, 1, 400, nil, 0},
		{"positive adjust", 100, 1, 0, &Adjust{Amount: 30, Sign: "+"}, 130},
		{"negative adjust", 100, 1, 0, &Adjust{Amount: 30, Sign: "-"}, 70},
		{"adjust below zero", 100, 1, 90, &Adjust{Amount: 50, Sign: "-"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := Line{
				Variant:  VariantRef{Price: c.price},
				Qty:      c.qty,
				Discount: c.discount,
				Adjust:   c.adjust,
			}
			if got := l.Total(); got != c.want {
				t.Fatalf("Total() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestLineCommissionClampedToCap(t *testing.T) {
	l := Line{
		Variant: VariantRef{Price: 100},
		Qty:     1,
		Stylists: []StylistShare{
			{ID: uuid.New(), Name: "Ana", Pct: 35}, // above cap, pays at 20
			{ID: uuid.New(), Name: "Luz", Pct: 10},
		},
	}
	// 100*0.20 + 100*0.10 = 30; shares are independent of each other
	if got := l.Commission(20); got != 30 {
		t.Fatalf("Commission(20) = %v, want 30", got)
	}
}

func TestPercentCouponCappedByMaxDiscount(t *testing.T) {
	cart := cartWithLine(1000, 1)
	cart.CouponCode = "promo10"
	c := &Coupon{Code: "PROMO10", Type: CouponPercent, Value: 10, MaxDiscount: 50, Active: true}

	totals := ComputeTotals(context.Background(), cart, testCfg, fixedCoupon(c))
	if totals.CouponCut != 50 {
		t.Fatalf("CouponCut = %v, want 50 (10%% of 1000 capped at 50)", totals.CouponCut)
	}
	if !totals.CouponValid {
		t.Fatalf("expected coupon to be valid")
	}
	if cart.AppliedCoupon == nil || cart.AppliedCoupon.Code != "PROMO10" {
		t.Fatalf("expected matched coupon attached to cart")
	}
}

func TestAmountCouponNeverExceedsBase(t *testing.T) {
	cart := cartWithLine(80, 1)
	cart.CouponCode = "MENOS100"
	c := &Coupon{Code: "MENOS100", Type: CouponAmount, Value: 100, Active: true}

	totals := ComputeTotals(context.Background(), cart, testCfg, fixedCoupon(c))
	if totals.CouponCut != 80 {
		t.Fatalf("CouponCut = %v, want 80 (clamped to pre-discount base)", totals.CouponCut)
	}
}

func TestCouponBelowMinPurchaseIgnored(t *testing.T) {
	cart := cartWithLine(100, 1)
	cart.CouponCode = "BIG"
	c := &Coupon{Code: "BIG", Type: CouponAmount, Value: 50, MinPurchase: 500, Active: true}

	totals := ComputeTotals(context.Background(), cart, testCfg, fixedCoupon(c))
	if totals.CouponCut != 0 || totals.CouponValid {
		t.Fatalf("expected coupon rejected below min purchase, got cut=%v valid=%v",
			totals.CouponCut, totals.CouponValid)
	}
	if cart.AppliedCoupon != nil {
		t.Fatalf("rejected coupon must not stay attached to the cart")
	}
}

func TestCouponOutsideWindowIgnored(t *testing.T) {
	cart := cartWithLine(100, 1)
	cart.CouponCode = "VIEJO"
	c := &Coupon{
		Code:    "VIEJO",
		Type:    CouponAmount,
		Value:   10,
		Active:  true,
		EndDate: time.Now().AddDate(0, 0, -2),
	}

	totals := ComputeTotals(context.Background(), cart, testCfg, fixedCoupon(c))
	if totals.CouponCut != 0 {
		t.Fatalf("expired coupon must yield zero cut, got %v", totals.CouponCut)
	}
}

func TestCouponLookupErrorIsFailOpen(t *testing.T) {
	cart := cartWithLine(100, 1)
	cart.CouponCode = "PROMO"
	broken := CouponLookupFunc(func(ctx context.Context, code string) (*Coupon, error) {
		return nil, errors.New("store unavailable")
	})

	totals := ComputeTotals(context.Background(), cart, testCfg, broken)
	if totals.CouponCut != 0 {
		t.Fatalf("lookup failure must not block the sale, got cut=%v", totals.CouponCut)
	}
	if totals.Total != 100 {
		t.Fatalf("Total = %v, want 100", totals.Total)
	}
}

func TestLoyaltyAccrual(t *testing.T) {
	cart := cartWithLine(500, 1)
	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.PointsEarned != 10.00 {
		t.Fatalf("PointsEarned = %v, want 10.00 (500 x 0.02)", totals.PointsEarned)
	}
}

func TestLoyaltyAccrualZeroWithLineDiscount(t *testing.T) {
	cart := NewCart()
	cart.AddLine(Line{Variant: VariantRef{Price: 500}, Qty: 1, Discount: 1})
	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.PointsEarned != 0 {
		t.Fatalf("PointsEarned = %v, want 0 when any line carries a discount", totals.PointsEarned)
	}
}

func TestLoyaltyAccrualZeroWithCouponCode(t *testing.T) {
	// Even a code that resolves to nothing suppresses accrual: the rule
	// keys off the code being present, not off a successful match.
	cart := cartWithLine(500, 1)
	cart.CouponCode = "NADA"
	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.PointsEarned != 0 {
		t.Fatalf("PointsEarned = %v, want 0 with a coupon code on the ticket", totals.PointsEarned)
	}
}

func TestPointsUseClampedToAffordable(t *testing.T) {
	cart := cartWithLine(100, 1)
	cart.Customer = &CustomerRef{ID: uuid.New(), Name: "Mara", Points: 500}
	cart.PointsUsed = 400

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.PointsUse != 100 {
		t.Fatalf("PointsUse = %v, want 100 (clamped to subtotal)", totals.PointsUse)
	}
	if cart.PointsUsed != 100 {
		t.Fatalf("cart.PointsUsed = %v, want clamped to 100", cart.PointsUsed)
	}
}

func TestPointsUseClampedToBalance(t *testing.T) {
	cart := cartWithLine(1000, 1)
	cart.Customer = &CustomerRef{ID: uuid.New(), Points: 30}
	cart.PointsUsed = 200

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.PointsUse != 30 {
		t.Fatalf("PointsUse = %v, want 30 (customer balance)", totals.PointsUse)
	}
}

func TestTipsBlockedWithoutGlobalStylist(t *testing.T) {
	cart := cartWithLine(100, 1)
	cart.SetTip(uuid.New(), 50)

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.TipTotal != 0 {
		t.Fatalf("TipTotal = %v, want 0 without a globally selected stylist", totals.TipTotal)
	}
	if !totals.TipBlocked {
		t.Fatalf("expected TipBlocked flag set")
	}
	if totals.Total != 100 {
		t.Fatalf("Total = %v, want 100 (blocked tip not charged)", totals.Total)
	}
}

func TestTipsPassThroughUntaxed(t *testing.T) {
	cart := cartWithLine(116, 1)
	st := StylistShare{ID: uuid.New(), Name: "Ana", Pct: 100}
	cart.StylistsGlobal = []StylistShare{st}
	cart.SetTip(st.ID, 50)

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.TipTotal != 50 {
		t.Fatalf("TipTotal = %v, want 50", totals.TipTotal)
	}
	// IVA extracted from 116 only; the tip adds straight onto the total
	if totals.IVA != 16.00 {
		t.Fatalf("IVA = %v, want 16.00", totals.IVA)
	}
	if totals.Total != 166 {
		t.Fatalf("Total = %v, want 166", totals.Total)
	}
}

func TestTaxExtractedNotAdded(t *testing.T) {
	cart := cartWithLine(116, 1)
	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.IVA != 16.00 {
		t.Fatalf("IVA = %v, want 16.00 extracted from a tax-inclusive 116", totals.IVA)
	}
	if totals.Total != 116 {
		t.Fatalf("Total = %v, want 116 (tax not added on top)", totals.Total)
	}
}

func TestGlobalDiscountAppliedAfterCouponAndPoints(t *testing.T) {
	cart := cartWithLine(200, 1)
	cart.Customer = &CustomerRef{ID: uuid.New(), Points: 50}
	cart.PointsUsed = 50
	cart.GlobalDiscount = 10
	cart.GlobalDiscountType = DiscountPercent

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	// taxBase = (200 - 50) then -10% = 135
	if totals.Total != 135 {
		t.Fatalf("Total = %v, want 135", totals.Total)
	}
}

func TestGlobalFlatDiscountFloorsAtZero(t *testing.T) {
	cart := cartWithLine(40, 1)
	cart.GlobalDiscount = 100
	cart.GlobalDiscountType = DiscountAmount

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	if totals.Total != 0 {
		t.Fatalf("Total = %v, want 0", totals.Total)
	}
	if totals.IVA != 0 {
		t.Fatalf("IVA = %v, want 0 on a zero tax base", totals.IVA)
	}
}

func TestCommissionTotalAcrossLines(t *testing.T) {
	cart := NewCart()
	ana := StylistShare{ID: uuid.New(), Name: "Ana", Pct: 15}
	cart.AddLine(Line{Variant: VariantRef{Price: 200}, Qty: 1, Stylists: []StylistShare{ana}})
	cart.AddLine(Line{Variant: VariantRef{Price: 100}, Qty: 2, Stylists: []StylistShare{ana}})

	totals := ComputeTotals(context.Background(), cart, testCfg, noCoupons())
	// 200*0.15 + 200*0.15 = 60
	if totals.CommissionTotal != 60 {
		t.Fatalf("CommissionTotal = %v, want 60", totals.CommissionTotal)
	}
	if totals.Subtotal != 400 {
		t.Fatalf("Subtotal = %v, want 400", totals.Subtotal)
	}
}

func TestPointsClampAccountsForCouponCut(t *testing.T) {
	cart := cartWithLine(100, 1)
	cart.Customer = &CustomerRef{ID: uuid.New(), Points: 100}
	cart.PointsUsed = 50
	cart.CouponCode = "MENOS30"
	c := &Coupon{Code: "MENOS30", Type: CouponAmount, Value: 30, Active: true}

	totals := ComputeTotals(context.Background(), cart, testCfg, fixedCoupon(c))
	// Coupon resolves against subtotal minus points already in use
	if totals.CouponCut != 30 {
		t.Fatalf("CouponCut = %v, want 30", totals.CouponCut)
	}
	if totals.PointsUse != 50 {
		t.Fatalf("PointsUse = %v, want 50", totals.PointsUse)
	}
	if totals.Total != 20 {
		t.Fatalf("Total = %v, want 20 (100 - 30 coupon - 50 points)", totals.Total)
	}
}
