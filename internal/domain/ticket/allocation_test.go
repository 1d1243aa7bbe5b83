package ticket

import (
	"testing"

	"github.com/google/uuid"
)

func TestAutoBalanceEmpty(t *testing.T) {
	if got := AutoBalance(nil); len(got) != 0 {
		t.Fatalf("AutoBalance(nil) = %v, want empty", got)
	}
	if got := AutoBalance([]StylistShare{}); len(got) != 0 {
		t.Fatalf("AutoBalance([]) = %v, want empty", got)
	}
}

func TestAutoBalanceSumsToHundred(t *testing.T) {
	cases := []struct {
		name string
		pcts []float64
	}{
		{"two zeros split evenly", []float64{0, 0}},
		{"already balanced", []float64{60, 40}},
		{"scaled up", []float64{10, 10}},
		{"scaled down", []float64{80, 80, 80}},
		{"three way zero", []float64{0, 0, 0}},
		{"uneven", []float64{7, 13, 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shares := make([]StylistShare, len(c.pcts))
			for i, p := range c.pcts {
				shares[i] = StylistShare{ID: uuid.New(), Pct: p}
			}
			out := AutoBalance(shares)
			if len(out) != len(shares) {
				t.Fatalf("len = %d, want %d", len(out), len(shares))
			}
			if got := SumPct(out); got != 100 {
				t.Fatalf("SumPct = %v, want exactly 100", got)
			}
		})
	}
}

func TestAutoBalanceRemainderOnLastShare(t *testing.T) {
	out := AutoBalance([]StylistShare{{Pct: 80}, {Pct: 80}, {Pct: 80}})
	if out[0].Pct != 33.33 || out[1].Pct != 33.33 || out[2].Pct != 33.34 {
		t.Fatalf("got %v/%v/%v, want 33.33/33.33/33.34", out[0].Pct, out[1].Pct, out[2].Pct)
	}
	out = AutoBalance([]StylistShare{{Pct: 0}, {Pct: 0}, {Pct: 0}})
	if out[0].Pct != 33.33 || out[2].Pct != 33.34 {
		t.Fatalf("even split remainder misplaced: %v/%v/%v", out[0].Pct, out[1].Pct, out[2].Pct)
	}
	if got := SumPct(out); got != 100 {
		t.Fatalf("SumPct = %v, want exactly 100", got)
	}
}

func TestAutoBalanceKeepsProportions(t *testing.T) {
	out := AutoBalance([]StylistShare{{Pct: 10}, {Pct: 30}})
	if out[0].Pct != 25 || out[1].Pct != 75 {
		t.Fatalf("got %v/%v, want 25/75", out[0].Pct, out[1].Pct)
	}
}

func TestAutoBalanceDoesNotMutateInput(t *testing.T) {
	in := []StylistShare{{Pct: 10}, {Pct: 10}}
	AutoBalance(in)
	if in[0].Pct != 10 || in[1].Pct != 10 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestTipRecipientsFallbackChain(t *testing.T) {
	lineSty := StylistShare{ID: uuid.New(), Name: "Ana"}
	globalSty := StylistShare{ID: uuid.New(), Name: "Luz", Pct: 100}
	roster := []StylistShare{{ID: uuid.New(), Name: "Mia"}}

	cart := NewCart()
	cart.AddLine(Line{Variant: VariantRef{Price: 100}, Qty: 1, Stylists: []StylistShare{lineSty, lineSty}})
	got := TipRecipients(cart, roster)
	if len(got) != 1 || got[0].ID != lineSty.ID {
		t.Fatalf("expected deduped line stylists, got %v", got)
	}

	cart = NewCart()
	cart.StylistsGlobal = []StylistShare{globalSty}
	got = TipRecipients(cart, roster)
	if len(got) != 1 || got[0].ID != globalSty.ID {
		t.Fatalf("expected global stylists fallback, got %v", got)
	}

	cart = NewCart()
	got = TipRecipients(cart, roster)
	if len(got) != 1 || got[0].ID != roster[0].ID {
		t.Fatalf("expected roster fallback, got %v", got)
	}
}

func TestDistributeTipEvenly(t *testing.T) {
	a := StylistShare{ID: uuid.New(), Name: "Ana"}
	b := StylistShare{ID: uuid.New(), Name: "Luz"}
	cart := NewCart()
	DistributeTipEvenly(cart, []StylistShare{a, b}, 90)
	if total := cart.TipTotal(); total != 90 {
		t.Fatalf("TipTotal = %v, want 90", total)
	}
	for _, alloc := range cart.TipAlloc {
		if alloc.Amount != 45 {
			t.Fatalf("share = %v, want 45", alloc.Amount)
		}
	}
}
