package request

import "github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"

// AddLineRequest adds a catalog variant to the active ticket
type AddLineRequest struct {
	VariantID string `json:"variant_id" binding:"required,uuid"`
	Qty       int    `json:"qty"`
}

// LineQtyRequest changes a line's quantity
type LineQtyRequest struct {
	Qty int `json:"qty" binding:"required"`
}

// LineDiscountRequest sets a flat discount on a line
type LineDiscountRequest struct {
	Discount float64 `json:"discount"`
}

// LineAdjustRequest sets or clears a signed adjustment on a line
type LineAdjustRequest struct {
	Amount float64 `json:"amount"`
	Sign   string  `json:"sign" binding:"omitempty,oneof=+ -"`
	Clear  bool    `json:"clear"`
}

// LineStylistsRequest replaces the stylist assignment on a line
type LineStylistsRequest struct {
	Stylists []StylistShareRequest `json:"stylists"`
}

// StylistShareRequest is one stylist assignment in a request body
type StylistShareRequest struct {
	ID   string  `json:"id" binding:"required,uuid"`
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}

// SetCustomerRequest attaches a customer to the ticket
type SetCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

// CouponRequest sets the coupon code on the ticket
type CouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// PointsRequest requests a loyalty points redemption
type PointsRequest struct {
	Points float64 `json:"points"`
}

// TipRequest sets a tip amount for one stylist
type TipRequest struct {
	StylistID string  `json:"stylist_id" binding:"required,uuid"`
	Amount    float64 `json:"amount"`
}

// DistributeTipRequest splits a tip total across the ticket's recipients
type DistributeTipRequest struct {
	Total float64 `json:"total" binding:"required"`
}

// GlobalDiscountRequest sets the ticket-wide discount
type GlobalDiscountRequest struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type" binding:"required,oneof=amount percent"`
}

// PaymentsRequest registers payments against the current total
type PaymentsRequest struct {
	Method  string  `json:"method" binding:"required"`
	Single  float64 `json:"single"`
	Method1 string  `json:"method1"`
	Mix1    float64 `json:"mix1"`
	Method2 string  `json:"method2"`
	Mix2    float64 `json:"mix2"`
}

// ToInput converts the request to the payment validation input
func (r *PaymentsRequest) ToInput() ticket.PaymentInput {
	return ticket.PaymentInput{
		Method:  r.Method,
		Single:  r.Single,
		Method1: r.Method1,
		Mix1:    r.Mix1,
		Method2: r.Method2,
		Mix2:    r.Mix2,
	}
}
