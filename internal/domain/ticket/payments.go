package ticket

import (
	"fmt"
	"time"

	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/google/uuid"
)

// MixedMethod is the payment type that splits a ticket across two methods
const MixedMethod = "Mixto"

// PaymentInput carries the raw amounts from the payment form
type PaymentInput struct {
	Method  string  `json:"method"`
	Single  float64 `json:"single"`
	Method1 string  `json:"method1"`
	Mix1    float64 `json:"mix1"`
	Method2 string  `json:"method2"`
	Mix2    float64 `json:"mix2"`
}

// ValidatePayments clamps the raw amounts into [0, total] and overwrites
// the cart's payment list with 0, 1 or 2 records, dropping zero-amount
// entries. In mixed mode a pair exceeding the total has its second amount
// silently reduced to the remainder. The sum is NOT required to reach the
// total: partial payment may be registered without blocking.
func ValidatePayments(cart *Cart, in PaymentInput, total float64) []Payment {
	if in.Method != MixedMethod {
		amount := money.Clamp(in.Single, 0, total)
		if amount > 0 {
			cart.Payments = []Payment{{
				ID:     uuid.New(),
				Method: in.Method,
				Amount: money.Round2(amount),
			}}
		} else {
			cart.Payments = []Payment{}
		}
		return cart.Payments
	}

	a1 := money.Clamp(in.Mix1, 0, total)
	a2 := money.Clamp(in.Mix2, 0, total)
	if a1+a2 > total {
		a2 = money.Round2(total - a1)
	}

	cart.Payments = []Payment{}
	if a1 > 0 {
		cart.Payments = append(cart.Payments, Payment{
			ID:     uuid.New(),
			Method: in.Method1,
			Amount: money.Round2(a1),
		})
	}
	if a2 > 0 {
		cart.Payments = append(cart.Payments, Payment{
			ID:     uuid.New(),
			Method: in.Method2,
			Amount: money.Round2(a2),
		})
	}
	return cart.Payments
}

// Folio builds the human ticket number for a close timestamp. Granularity
// is one hour; two tickets closed within the same hour share a folio.
func Folio(t time.Time) string {
	return fmt.Sprintf("POS-%02d%02d%04d-%02d", t.Day(), int(t.Month()), t.Year(), t.Hour())
}
