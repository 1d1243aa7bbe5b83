package ticket

import (
	"strings"

	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/google/uuid"
)

// DiscountType selects how a global discount is interpreted
type DiscountType string

const (
	DiscountAmount  DiscountType = "amount"
	DiscountPercent DiscountType = "percent"
)

// VariantRef is the catalog snapshot carried on a cart line
type VariantRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// StylistShare is a stylist assigned to a line or to the whole ticket,
// with the commission percentage applied for this ticket
type StylistShare struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Pct  float64   `json:"pct"`
}

// Adjust is an optional signed flat adjustment on a line
type Adjust struct {
	Amount float64 `json:"amount"`
	Sign   string  `json:"sign"` // "+" or "-"
}

// Signed returns the adjustment with its sign applied
func (a *Adjust) Signed() float64 {
	if a == nil {
		return 0
	}
	if a.Sign == "-" {
		return -a.Amount
	}
	return a.Amount
}

// Line is one product/service entry on the ticket
type Line struct {
	ID       uuid.UUID      `json:"id"`
	Variant  VariantRef     `json:"variant"`
	Qty      int            `json:"qty"`
	Discount float64        `json:"discount"`
	Adjust   *Adjust        `json:"adjust,omitempty"`
	Stylists []StylistShare `json:"stylists"`
}

// Base returns price x qty before discounts
func (l *Line) Base() float64 {
	qty := l.Qty
	if qty < 1 {
		qty = 1
	}
	return l.Variant.Price * float64(qty)
}

// Total returns the line total, floored at zero: an oversized discount or
// adjustment can never drive a line negative
func (l *Line) Total() float64 {
	total := l.Base() - l.Discount + l.Adjust.Signed()
	if total < 0 {
		return 0
	}
	return total
}

// Commission returns the line's total commission across its assigned
// stylists. Each stylist earns against the full line total with the
// percentage clamped to cap; shares are independent, not a revenue split.
func (l *Line) Commission(cap float64) float64 {
	total := money.Round2(l.Total())
	var sum float64
	for _, st := range l.Stylists {
		sum += total * (money.ClampPct(st.Pct, cap) / 100)
	}
	return sum
}

// TipAllocation is a tip amount earmarked for one stylist
type TipAllocation struct {
	ID        uuid.UUID `json:"id"`
	StylistID uuid.UUID `json:"stylist_id"`
	Amount    float64   `json:"amount"`
}

// Payment is a registered payment against the active ticket
type Payment struct {
	ID     uuid.UUID `json:"id"`
	Method string    `json:"method"`
	Amount float64   `json:"amount"`
}

// CustomerRef is the customer snapshot attached to the ticket
type CustomerRef struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Points float64   `json:"points"`
}

// Cart is the mutable in-progress ticket. It is an explicit owned value:
// pricing and settlement receive it by reference, there is no ambient
// singleton.
type Cart struct {
	Customer           *CustomerRef    `json:"customer,omitempty"`
	PointsUsed         float64         `json:"points_used"`
	CouponCode         string          `json:"coupon_code"`
	AppliedCoupon      *Coupon         `json:"applied_coupon,omitempty"`
	Lines              []Line          `json:"lines"`
	StylistsGlobal     []StylistShare  `json:"stylists_global"`
	TipAlloc           []TipAllocation `json:"tip_alloc"`
	GlobalDiscount     float64         `json:"global_discount"`
	GlobalDiscountType DiscountType    `json:"global_discount_type"`
	Payments           []Payment       `json:"payments"`
}

// NewCart returns an empty ticket
func NewCart() *Cart {
	c := &Cart{}
	c.Reset()
	return c
}

// Reset restores the empty initial state: fresh line list, no coupon, no
// payments, no tip allocations
func (c *Cart) Reset() {
	c.Customer = nil
	c.PointsUsed = 0
	c.CouponCode = ""
	c.AppliedCoupon = nil
	c.Lines = []Line{}
	c.StylistsGlobal = []StylistShare{}
	c.TipAlloc = []TipAllocation{}
	c.GlobalDiscount = 0
	c.GlobalDiscountType = DiscountAmount
	c.Payments = []Payment{}
}

// normalize brings the cart to canonical form before pricing: coupon code
// uppercased, global stylists restricted to positive percentages.
func (c *Cart) normalize() {
	c.CouponCode = strings.ToUpper(strings.TrimSpace(c.CouponCode))
	kept := c.StylistsGlobal[:0]
	for _, st := range c.StylistsGlobal {
		if st.Pct > 0 {
			kept = append(kept, st)
		}
	}
	c.StylistsGlobal = kept
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	if c.TipAlloc == nil {
		c.TipAlloc = []TipAllocation{}
	}
	if c.Payments == nil {
		c.Payments = []Payment{}
	}
}

// AddLine appends a line to the ticket
func (c *Cart) AddLine(l Line) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Qty < 1 {
		l.Qty = 1
	}
	if l.Stylists == nil {
		l.Stylists = []StylistShare{}
	}
	c.Lines = append(c.Lines, l)
}

// RemoveLine drops the line at index; out-of-range indexes are ignored
func (c *Cart) RemoveLine(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

// SetTip sets or replaces the tip amount for one stylist
func (c *Cart) SetTip(stylistID uuid.UUID, amount float64) {
	for i := range c.TipAlloc {
		if c.TipAlloc[i].StylistID == stylistID {
			c.TipAlloc[i].Amount = amount
			return
		}
	}
	c.TipAlloc = append(c.TipAlloc, TipAllocation{
		ID:        uuid.New(),
		StylistID: stylistID,
		Amount:    amount,
	})
}

// RemoveTip drops the tip allocation for one stylist
func (c *Cart) RemoveTip(stylistID uuid.UUID) {
	kept := c.TipAlloc[:0]
	for _, t := range c.TipAlloc {
		if t.StylistID != stylistID {
			kept = append(kept, t)
		}
	}
	c.TipAlloc = kept
}

// TipTotal sums the tip allocations on the ticket
func (c *Cart) TipTotal() float64 {
	var sum float64
	for _, t := range c.TipAlloc {
		sum += t.Amount
	}
	return sum
}

// PaymentsTotal sums the registered payments
func (c *Cart) PaymentsTotal() float64 {
	var sum float64
	for _, p := range c.Payments {
		sum += p.Amount
	}
	return sum
}
