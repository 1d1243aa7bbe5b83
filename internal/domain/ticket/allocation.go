package ticket

import "github.com/DonIsaac10/Sistema-POS/pkg/money"

// SumPct returns the rounded sum of the shares' percentages
func SumPct(shares []StylistShare) float64 {
	var sum float64
	for _, s := range shares {
		sum += s.Pct
	}
	return money.Round2(sum)
}

// AutoBalance normalizes the shares' percentages to sum to exactly 100 by
// proportional scaling. An empty set stays empty; a set summing to zero is
// split evenly. The rounding remainder lands on the last share. Input is
// not mutated.
func AutoBalance(shares []StylistShare) []StylistShare {
	if len(shares) == 0 {
		return []StylistShare{}
	}
	total := SumPct(shares)
	out := make([]StylistShare, len(shares))
	copy(out, shares)
	if total == 100 {
		return out
	}
	last := len(out) - 1
	if total <= 0 {
		eq := money.Round2(100 / float64(len(shares)))
		for i := range out {
			out[i].Pct = eq
		}
		out[last].Pct = money.Round2(100 - eq*float64(last))
		return out
	}
	var head float64
	for i := range out {
		out[i].Pct = money.Round2(out[i].Pct / total * 100)
		if i < last {
			head += out[i].Pct
		}
	}
	out[last].Pct = money.Round2(100 - head)
	return out
}

// TipRecipients returns the stylists a tip can be split across: stylists
// assigned on lines first, falling back to the ticket-global selection,
// falling back to the full roster.
func TipRecipients(cart *Cart, roster []StylistShare) []StylistShare {
	var fromLines []StylistShare
	seen := map[string]bool{}
	for _, l := range cart.Lines {
		for _, s := range l.Stylists {
			if !seen[s.ID.String()] {
				fromLines = append(fromLines, s)
				seen[s.ID.String()] = true
			}
		}
	}
	if len(fromLines) > 0 {
		return fromLines
	}
	if len(cart.StylistsGlobal) > 0 {
		return cart.StylistsGlobal
	}
	return roster
}

// DistributeTipEvenly replaces the cart's tip allocations with an even
// split of total across the recipients. A total of zero clears every
// recipient's share.
func DistributeTipEvenly(cart *Cart, recipients []StylistShare, total float64) {
	if len(recipients) == 0 {
		return
	}
	share := total / float64(len(recipients))
	for _, st := range recipients {
		cart.SetTip(st.ID, money.Round2(share))
	}
}
