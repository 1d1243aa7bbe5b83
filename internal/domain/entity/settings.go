package entity

import (
	"strings"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
)

// DefaultPaymentMethods is the payment method list seeded when none is configured
var DefaultPaymentMethods = []string{"Efectivo", "Tarjeta", "Transferencia"}

// Settings is the single configuration row for the salon. It is loaded at
// startup with defaults backfilled and persisted if any field is missing,
// and mutated only through the settings endpoint.
type Settings struct {
	ID              uint              `gorm:"primary_key" json:"id"`
	IVARate         float64           `gorm:"default:0" json:"iva_rate"`
	IVARateSet      bool              `gorm:"default:false" json:"-"` // explicit 0% must survive backfill
	LoyaltyRate     float64           `gorm:"default:0" json:"loyalty_rate"`
	CommissionCap   float64           `gorm:"default:0" json:"commission_cap"`
	PaymentMethods  string            `gorm:"size:500" json:"-"` // comma-joined, ordered
	PayrollBaseFreq enum.PayFrequency `gorm:"size:20" json:"payroll_base_freq"`
	PayrollCommFreq enum.PayFrequency `gorm:"size:20" json:"payroll_comm_freq"`
	PayrollTipFreq  enum.PayFrequency `gorm:"size:20" json:"payroll_tip_freq"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}

// Methods returns the configured payment methods in order
func (s *Settings) Methods() []string {
	if strings.TrimSpace(s.PaymentMethods) == "" {
		return nil
	}
	parts := strings.Split(s.PaymentMethods, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if m := strings.TrimSpace(p); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// SetMethods stores the payment method list
func (s *Settings) SetMethods(methods []string) {
	s.PaymentMethods = strings.Join(methods, ",")
}

// Backfill fills any missing field with its default and reports whether
// something changed and needs persisting. A zero IVA rate counts as
// missing only while it was never set through an update.
func (s *Settings) Backfill() bool {
	changed := false
	if s.IVARate == 0 && !s.IVARateSet {
		s.IVARate = 0.16
		changed = true
	}
	if s.LoyaltyRate == 0 {
		s.LoyaltyRate = 0.02
		changed = true
	}
	if s.CommissionCap == 0 {
		s.CommissionCap = 20
		changed = true
	}
	if len(s.Methods()) == 0 {
		s.SetMethods(DefaultPaymentMethods)
		changed = true
	}
	if !s.PayrollBaseFreq.IsValid() {
		s.PayrollBaseFreq = enum.FreqBiweekly
		changed = true
	}
	if !s.PayrollCommFreq.IsValid() {
		s.PayrollCommFreq = enum.FreqWeekly
		changed = true
	}
	if !s.PayrollTipFreq.IsValid() {
		s.PayrollTipFreq = enum.FreqWeekly
		changed = true
	}
	return changed
}
