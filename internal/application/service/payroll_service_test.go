package service

import (
	"context"
	"testing"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/google/uuid"
)

type payrollFixture struct {
	svc      *PayrollService
	payroll  *fakePayrollRepo
	stylists *fakeStylistRepo
	orders   *fakeOrderRepo
	settings *fakeSettingsRepo
}

func newPayrollFixture() *payrollFixture {
	f := &payrollFixture{
		payroll:  &fakePayrollRepo{},
		stylists: &fakeStylistRepo{},
		orders:   &fakeOrderRepo{},
		settings: &fakeSettingsRepo{},
	}
	f.svc = NewPayrollService(f.payroll, f.stylists, f.orders, f.settings)
	return f
}

func (f *payrollFixture) seedStylist(t *testing.T, name string, salary float64) uuid.UUID {
	t.Helper()
	stylist := &entity.Stylist{Name: name, Pct: 10, BaseSalary: salary}
	if err := f.stylists.Create(context.Background(), stylist); err != nil {
		t.Fatalf("seed stylist: %v", err)
	}
	return stylist.ID
}

func TestSummaryProratesBaseSalary(t *testing.T) {
	f := newPayrollFixture()
	f.seedStylist(t, "Mia", 3000)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Full biweekly period pays the whole base
	summary, err := f.svc.Summary(context.Background(), from, from.AddDate(0, 0, 14), nil)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got := summary.Payouts[0].Base; got != 3000 {
		t.Errorf("expected full base 3000 over 15 days, got %v", got)
	}

	// One week of a biweekly base is 7/15
	summary, err = f.svc.Summary(context.Background(), from, from.AddDate(0, 0, 6), nil)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got := summary.Payouts[0].Base; got != 1400 {
		t.Errorf("expected prorated base 1400 over 7 days, got %v", got)
	}

	// A range longer than the period never pays more than one period
	summary, err = f.svc.Summary(context.Background(), from, from.AddDate(0, 0, 40), nil)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got := summary.Payouts[0].Base; got != 3000 {
		t.Errorf("expected base capped at one period, got %v", got)
	}
}

func TestSummaryAggregatesCommissionsTipsAndPaid(t *testing.T) {
	f := newPayrollFixture()
	stylistID := f.seedStylist(t, "Mia", 0)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 14)
	mid := from.AddDate(0, 0, 5)

	orderID := uuid.New()
	f.orders.orders = append(f.orders.orders, entity.Order{ID: orderID, ClosedAt: mid})
	f.orders.lines = append(f.orders.lines, entity.OrderLine{
		OrderID:   orderID,
		LineTotal: 200,
		Stylists:  entity.StylistShareList{{ID: stylistID, Pct: 10}},
	})
	f.orders.tips = append(f.orders.tips, entity.Tip{
		OrderID:   orderID,
		StylistID: stylistID,
		Amount:    30,
		ClosedAt:  mid,
	})
	f.payroll.entries = append(f.payroll.entries, &entity.PayrollEntry{
		ID:        uuid.New(),
		StylistID: stylistID,
		Date:      mid,
		Amount:    20,
		Status:    enum.PayrollPaid,
	})

	summary, err := f.svc.Summary(context.Background(), from, to, nil)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	payout := summary.Payouts[0]
	if payout.Commissions != 20 {
		t.Errorf("expected commission 20 from 10%% of 200, got %v", payout.Commissions)
	}
	if payout.Tips != 30 {
		t.Errorf("expected tips 30, got %v", payout.Tips)
	}
	if payout.Paid != 20 {
		t.Errorf("expected paid 20, got %v", payout.Paid)
	}
	if payout.Pending != 30 {
		t.Errorf("expected pending 30 (20+30-20), got %v", payout.Pending)
	}
}

func TestSummaryClampsCommissionToCap(t *testing.T) {
	f := newPayrollFixture()
	f.settings.settings = &entity.Settings{CommissionCap: 20, PayrollBaseFreq: enum.FreqBiweekly}
	stylistID := f.seedStylist(t, "Mia", 0)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 14)

	orderID := uuid.New()
	f.orders.orders = append(f.orders.orders, entity.Order{ID: orderID, ClosedAt: from.AddDate(0, 0, 5)})
	f.orders.lines = append(f.orders.lines, entity.OrderLine{
		OrderID:   orderID,
		LineTotal: 200,
		Stylists:  entity.StylistShareList{{ID: stylistID, Pct: 35}},
	})

	summary, err := f.svc.Summary(context.Background(), from, to, nil)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got := summary.Payouts[0].Commissions; got != 40 {
		t.Errorf("expected commission 40 with pct 35 clamped to cap 20, got %v", got)
	}
}

func TestSummaryFiltersBySingleStylist(t *testing.T) {
	f := newPayrollFixture()
	miaID := f.seedStylist(t, "Mia", 1000)
	f.seedStylist(t, "Luz", 2000)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 14)

	summary, err := f.svc.Summary(context.Background(), from, to, &miaID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary.Payouts) != 1 || summary.Payouts[0].StylistID != miaID {
		t.Fatalf("expected only Mia's payout, got %+v", summary.Payouts)
	}
}

func TestSummaryRejectsInvertedRange(t *testing.T) {
	f := newPayrollFixture()
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := f.svc.Summary(context.Background(), from, from.AddDate(0, 0, -1), nil); err == nil {
		t.Fatalf("expected inverted range to fail")
	}
}

func TestRegisterPendingSnapshotsDues(t *testing.T) {
	f := newPayrollFixture()
	stylistID := f.seedStylist(t, "Mia", 3000)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 14)

	entry, err := f.svc.RegisterPending(context.Background(), stylistID, from, to)
	if err != nil {
		t.Fatalf("register pending: %v", err)
	}
	if entry.Amount != 3000 {
		t.Errorf("expected pending amount 3000, got %v", entry.Amount)
	}
	if entry.Status != enum.PayrollPending || entry.Kind != enum.PayrollAuto {
		t.Errorf("expected a pending auto entry, got %s/%s", entry.Status, entry.Kind)
	}
	if entry.Concept != "Nómina 01/03/2026 - 15/03/2026" {
		t.Errorf("unexpected concept %q", entry.Concept)
	}
}

func TestRegisterPendingRejectsZeroDues(t *testing.T) {
	f := newPayrollFixture()
	stylistID := f.seedStylist(t, "Mia", 0)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := f.svc.RegisterPending(context.Background(), stylistID, from, from.AddDate(0, 0, 14)); err == nil {
		t.Fatalf("expected error when nothing is pending")
	}
}

func TestMarkPaidOnlyOnce(t *testing.T) {
	f := newPayrollFixture()
	stylistID := f.seedStylist(t, "Mia", 0)

	entry := &entity.PayrollEntry{
		StylistID: stylistID,
		Date:      time.Now(),
		Amount:    500,
		Status:    enum.PayrollPending,
	}
	if err := f.payroll.Create(context.Background(), entry); err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	paid, err := f.svc.MarkPaid(context.Background(), entry.ID, "Efectivo")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != enum.PayrollPaid || paid.PaidAt == nil {
		t.Errorf("expected entry stamped paid, got %+v", paid)
	}
	if paid.Method != "Efectivo" {
		t.Errorf("expected method recorded, got %q", paid.Method)
	}

	if _, err := f.svc.MarkPaid(context.Background(), entry.ID, ""); err == nil {
		t.Fatalf("expected conflict on second mark")
	}
}

func TestCreateEntryValidatesInput(t *testing.T) {
	f := newPayrollFixture()
	stylistID := f.seedStylist(t, "Mia", 0)

	if _, err := f.svc.CreateEntry(context.Background(), &CreateEntryInput{StylistID: stylistID, Amount: 0}); err == nil {
		t.Fatalf("expected zero amount to fail")
	}
	if _, err := f.svc.CreateEntry(context.Background(), &CreateEntryInput{StylistID: uuid.New(), Amount: 100}); err == nil {
		t.Fatalf("expected unknown stylist to fail")
	}

	entry, err := f.svc.CreateEntry(context.Background(), &CreateEntryInput{
		StylistID: stylistID,
		Amount:    100,
		Status:    enum.PayrollPaid,
	})
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if entry.Kind != enum.PayrollManual {
		t.Errorf("expected manual kind, got %s", entry.Kind)
	}
	if entry.PaidAt == nil {
		t.Errorf("expected paid timestamp on an entry created as paid")
	}
}
