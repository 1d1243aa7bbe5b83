package ticket

import (
	"testing"
	"time"
)

func TestValidatePaymentsSingle(t *testing.T) {
	cart := NewCart()
	got := ValidatePayments(cart, PaymentInput{Method: "Efectivo", Single: 150}, 100)
	if len(got) != 1 {
		t.Fatalf("payments = %d, want 1", len(got))
	}
	if got[0].Amount != 100 {
		t.Fatalf("amount = %v, want clamped to 100", got[0].Amount)
	}
	if got[0].Method != "Efectivo" {
		t.Fatalf("method = %q", got[0].Method)
	}
}

func TestValidatePaymentsZeroDropped(t *testing.T) {
	cart := NewCart()
	cart.Payments = []Payment{{Method: "Tarjeta", Amount: 50}}
	got := ValidatePayments(cart, PaymentInput{Method: "Efectivo", Single: 0}, 100)
	if len(got) != 0 {
		t.Fatalf("payments = %d, want 0 (zero entries dropped, list overwritten)", len(got))
	}
}

func TestValidatePaymentsMixedExceedingTotal(t *testing.T) {
	cart := NewCart()
	got := ValidatePayments(cart, PaymentInput{
		Method:  MixedMethod,
		Method1: "Efectivo",
		Mix1:    80,
		Method2: "Tarjeta",
		Mix2:    80,
	}, 100)
	if len(got) != 2 {
		t.Fatalf("payments = %d, want 2", len(got))
	}
	if got[0].Amount != 80 {
		t.Fatalf("first amount = %v, want 80", got[0].Amount)
	}
	// second amount silently reduced to the remainder
	if got[1].Amount != 20 {
		t.Fatalf("second amount = %v, want 20", got[1].Amount)
	}
}

func TestValidatePaymentsMixedSecondZeroDropped(t *testing.T) {
	cart := NewCart()
	got := ValidatePayments(cart, PaymentInput{
		Method:  MixedMethod,
		Method1: "Efectivo",
		Mix1:    100,
		Method2: "Tarjeta",
		Mix2:    40,
	}, 100)
	if len(got) != 1 {
		t.Fatalf("payments = %d, want 1 (second reduced to 0 and dropped)", len(got))
	}
	if got[0].Amount != 100 {
		t.Fatalf("amount = %v, want 100", got[0].Amount)
	}
}

func TestValidatePaymentsPartialAllowed(t *testing.T) {
	cart := NewCart()
	got := ValidatePayments(cart, PaymentInput{Method: "Tarjeta", Single: 40}, 100)
	if len(got) != 1 || got[0].Amount != 40 {
		t.Fatalf("partial payment should register without blocking, got %v", got)
	}
}

func TestFolioFormat(t *testing.T) {
	at := time.Date(2026, time.March, 5, 9, 41, 0, 0, time.Local)
	if got := Folio(at); got != "POS-05032026-09" {
		t.Fatalf("Folio = %q, want POS-05032026-09", got)
	}
}
