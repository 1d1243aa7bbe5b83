package service

import (
	"context"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/google/uuid"
)

// PayrollService aggregates what each stylist is owed over a date range
// and manages the payroll ledger
type PayrollService struct {
	payrollRepo  repository.PayrollRepository
	stylistRepo  repository.StylistRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	payrollRepo repository.PayrollRepository,
	stylistRepo repository.StylistRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
) *PayrollService {
	return &PayrollService{
		payrollRepo:  payrollRepo,
		stylistRepo:  stylistRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
	}
}

// StylistPayout is one stylist's aggregated dues over a range
type StylistPayout struct {
	StylistID   uuid.UUID `json:"stylist_id"`
	StylistName string    `json:"stylist_name"`
	Base        float64   `json:"base"`
	Commissions float64   `json:"commissions"`
	Tips        float64   `json:"tips"`
	Paid        float64   `json:"paid"`
	Pending     float64   `json:"pending"`
}

// PayrollSummary is the payroll view for a date range
type PayrollSummary struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Payouts []StylistPayout `json:"payouts"`
}

// Summary computes each stylist's dues between from and to, optionally
// narrowed to a single stylist. Base salary is prorated by range length
// against the configured base frequency, capped at one full period.
// Commissions come from persisted order lines with each percentage
// clamped to the configured cap, tips from persisted tip records, and
// paid amounts from payroll entries already marked paid inside the range.
func (s *PayrollService) Summary(ctx context.Context, from, to time.Time, stylistID *uuid.UUID) (*PayrollSummary, error) {
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("Range end precedes start")
	}

	baseFreq := enum.FreqBiweekly
	commCap := 20.0
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		baseFreq = settings.PayrollBaseFreq
		commCap = settings.CommissionCap
	}

	stylists, err := s.stylistRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := s.orderRepo.ListLinesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	tips, err := s.orderRepo.ListTipsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	entries, err := s.payrollRepo.List(ctx, &repository.PayrollFilterParams{
		From:   &from,
		To:     &to,
		Status: enum.PayrollPaid,
	})
	if err != nil {
		return nil, err
	}

	commissions := map[uuid.UUID]float64{}
	for _, l := range lines {
		for _, share := range l.Stylists {
			commissions[share.ID] += l.LineTotal * (money.ClampPct(share.Pct, commCap) / 100)
		}
	}

	tipTotals := map[uuid.UUID]float64{}
	for _, t := range tips {
		tipTotals[t.StylistID] += t.Amount
	}

	paid := map[uuid.UUID]float64{}
	for _, e := range entries {
		paid[e.StylistID] += e.Amount
	}

	rangeDays := int(to.Sub(from).Hours()/24) + 1
	periodDays := baseFreq.PeriodDays()
	fraction := float64(rangeDays) / float64(periodDays)
	if fraction > 1 {
		fraction = 1
	}

	payouts := make([]StylistPayout, 0, len(stylists))
	for _, st := range stylists {
		if stylistID != nil && st.ID != *stylistID {
			continue
		}
		base := money.Round2(st.BaseSalary * fraction)
		comm := money.Round2(commissions[st.ID])
		tip := money.Round2(tipTotals[st.ID])
		paidAmt := money.Round2(paid[st.ID])
		pending := money.Round2(base + comm + tip - paidAmt)
		if pending < 0 {
			pending = 0
		}
		payouts = append(payouts, StylistPayout{
			StylistID:   st.ID,
			StylistName: st.Name,
			Base:        base,
			Commissions: comm,
			Tips:        tip,
			Paid:        paidAmt,
			Pending:     pending,
		})
	}

	return &PayrollSummary{From: from, To: to, Payouts: payouts}, nil
}

// RegisterPending snapshots a stylist's pending dues for a range as a
// pending auto entry, ready to be marked paid
func (s *PayrollService) RegisterPending(ctx context.Context, stylistID uuid.UUID, from, to time.Time) (*entity.PayrollEntry, error) {
	summary, err := s.Summary(ctx, from, to, &stylistID)
	if err != nil {
		return nil, err
	}

	for _, p := range summary.Payouts {
		if p.StylistID != stylistID {
			continue
		}
		if p.Pending <= 0 {
			return nil, apperror.NewBadRequestError("Nothing pending for this stylist in the range")
		}
		entry := &entity.PayrollEntry{
			StylistID:   p.StylistID,
			StylistName: p.StylistName,
			Date:        to,
			Amount:      p.Pending,
			Concept:     "Nómina " + from.Format("02/01/2006") + " - " + to.Format("02/01/2006"),
			Status:      enum.PayrollPending,
			Kind:        enum.PayrollAuto,
		}
		if err := s.payrollRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
		return entry, nil
	}
	return nil, apperror.NewNotFoundError("Stylist")
}

// CreateEntryInput represents a hand-entered payroll record
type CreateEntryInput struct {
	StylistID uuid.UUID
	Date      time.Time
	Amount    float64
	Concept   string
	Method    string
	Status    enum.PayrollStatus
	Notes     string
}

// CreateEntry records a manual payroll payment
func (s *PayrollService) CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.PayrollEntry, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewFieldError("amount", "must be greater than zero")
	}
	stylist, err := s.stylistRepo.GetByID(ctx, input.StylistID)
	if err != nil {
		return nil, err
	}
	if stylist == nil {
		return nil, apperror.NewNotFoundError("Stylist")
	}

	status := input.Status
	if !status.IsValid() {
		status = enum.PayrollPending
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &entity.PayrollEntry{
		StylistID:   stylist.ID,
		StylistName: stylist.Name,
		Date:        date,
		Amount:      money.Round2(input.Amount),
		Concept:     input.Concept,
		Method:      input.Method,
		Status:      status,
		Notes:       input.Notes,
		Kind:        enum.PayrollManual,
	}
	if status == enum.PayrollPaid {
		now := time.Now()
		entry.PaidAt = &now
	}
	if err := s.payrollRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// MarkPaid flips a pending entry to paid, stamping the payment method
func (s *PayrollService) MarkPaid(ctx context.Context, id uuid.UUID, method string) (*entity.PayrollEntry, error) {
	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Payroll entry")
	}
	if entry.Status == enum.PayrollPaid {
		return nil, apperror.NewConflictError("Entry is already paid")
	}

	now := time.Now()
	entry.Status = enum.PayrollPaid
	entry.PaidAt = &now
	if method != "" {
		entry.Method = method
	}
	if err := s.payrollRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes a payroll entry
func (s *PayrollService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Payroll entry")
	}
	return s.payrollRepo.Delete(ctx, id)
}

// ListEntries returns payroll entries matching the filters
func (s *PayrollService) ListEntries(ctx context.Context, params *repository.PayrollFilterParams) ([]entity.PayrollEntry, error) {
	return s.payrollRepo.List(ctx, params)
}

// rosterShares adapts stylists to the share shape tips distribute over
func rosterShares(stylists []entity.Stylist) []ticket.StylistShare {
	out := make([]ticket.StylistShare, 0, len(stylists))
	for _, st := range stylists {
		out = append(out, ticket.StylistShare{ID: st.ID, Name: st.Name, Pct: st.Pct})
	}
	return out
}
