package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/google/uuid"
)

type posFixture struct {
	svc       *PosService
	settings  *fakeSettingsRepo
	coupons   *fakeCouponRepo
	customers *fakeCustomerRepo
	catalog   *fakeCatalogRepo
	stylists  *fakeStylistRepo
	orders    *fakeOrderRepo
	snapshots *fakeSnapshotRepo
}

func newPosFixture() *posFixture {
	f := &posFixture{
		settings:  &fakeSettingsRepo{},
		coupons:   &fakeCouponRepo{},
		customers: &fakeCustomerRepo{},
		catalog:   &fakeCatalogRepo{},
		stylists:  &fakeStylistRepo{},
		orders:    &fakeOrderRepo{},
		snapshots: &fakeSnapshotRepo{},
	}
	f.svc = NewPosService(f.settings, f.coupons, f.customers, f.catalog, f.stylists, f.orders, f.snapshots)
	return f
}

func (f *posFixture) seedVariant(t *testing.T, name string, price float64) uuid.UUID {
	t.Helper()
	variant := &entity.Variant{Name: name, Price: price}
	if err := f.catalog.CreateVariant(context.Background(), variant); err != nil {
		t.Fatalf("seed variant: %v", err)
	}
	return variant.ID
}

func (f *posFixture) addLine(t *testing.T, price float64) {
	t.Helper()
	id := f.seedVariant(t, "Corte", price)
	if _, err := f.svc.AddVariant(context.Background(), id, 1); err != nil {
		t.Fatalf("add variant: %v", err)
	}
}

func (f *posFixture) payCash(amount float64) {
	f.svc.RegisterPayments(context.Background(), ticket.PaymentInput{Method: "Efectivo", Single: amount})
}

func TestCloseTicketRequiresLines(t *testing.T) {
	f := newPosFixture()
	_, err := f.svc.CloseTicket(context.Background(), nil)
	if err != apperror.ErrEmptyTicket {
		t.Fatalf("expected empty ticket error, got %v", err)
	}
}

func TestCloseTicketRequiresPayments(t *testing.T) {
	f := newPosFixture()
	f.addLine(t, 100)
	_, err := f.svc.CloseTicket(context.Background(), nil)
	if err != apperror.ErrNoPayments {
		t.Fatalf("expected no payments error, got %v", err)
	}
}

func TestCloseTicketPersistsAndResets(t *testing.T) {
	f := newPosFixture()
	f.addLine(t, 100)
	f.payCash(100)

	cashierID := uuid.New()
	order, err := f.svc.CloseTicket(context.Background(), &cashierID)
	if err != nil {
		t.Fatalf("close ticket: %v", err)
	}

	if order.Total != 100 {
		t.Errorf("expected total 100, got %v", order.Total)
	}
	if order.IVA != 13.79 {
		t.Errorf("expected extracted IVA 13.79, got %v", order.IVA)
	}
	if !regexp.MustCompile(`^POS-\d{8}-\d{2}$`).MatchString(order.Folio) {
		t.Errorf("unexpected folio %q", order.Folio)
	}
	if order.CashierID == nil || *order.CashierID != cashierID {
		t.Errorf("expected cashier %s on the order", cashierID)
	}

	if len(f.orders.orders) != 1 {
		t.Fatalf("expected 1 persisted order, got %d", len(f.orders.orders))
	}
	if len(f.orders.lines) != 1 || f.orders.lines[0].LineTotal != 100 {
		t.Fatalf("expected 1 persisted line with total 100, got %+v", f.orders.lines)
	}

	state := f.svc.State(context.Background())
	if len(state.Cart.Lines) != 0 || len(state.Cart.Payments) != 0 {
		t.Errorf("expected cart reset after close")
	}
	if f.snapshots.clears == 0 {
		t.Errorf("expected snapshot cleared after close")
	}
}

func TestCloseTicketAllowsPartialPayment(t *testing.T) {
	f := newPosFixture()
	f.addLine(t, 100)
	f.payCash(40)

	order, err := f.svc.CloseTicket(context.Background(), nil)
	if err != nil {
		t.Fatalf("close ticket: %v", err)
	}
	var paid float64
	for _, p := range order.Payments {
		paid += p.Amount
	}
	if paid != 40 {
		t.Errorf("expected 40 registered, got %v", paid)
	}
	if order.Total != 100 {
		t.Errorf("expected total 100 regardless of payment, got %v", order.Total)
	}
}

func TestCloseTicketCreditsEarnedPoints(t *testing.T) {
	f := newPosFixture()
	customer := &entity.Customer{Name: "Ana", Phone: "5550001111"}
	if err := f.customers.Create(context.Background(), customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	f.addLine(t, 200)
	if _, err := f.svc.SetCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("set customer: %v", err)
	}
	f.payCash(200)

	order, err := f.svc.CloseTicket(context.Background(), nil)
	if err != nil {
		t.Fatalf("close ticket: %v", err)
	}
	if order.PointsEarned != 4 {
		t.Errorf("expected 4 points earned at 2%%, got %v", order.PointsEarned)
	}
	if customer.Points != 4 {
		t.Errorf("expected customer credited 4 points, got %v", customer.Points)
	}
}

func TestCouponCodePresenceBlocksAccrual(t *testing.T) {
	f := newPosFixture()
	f.addLine(t, 200)

	// Even a code that matches nothing suppresses loyalty accrual
	state := f.svc.ApplyCoupon(context.Background(), "NOEXISTE")
	if state.Totals.PointsEarned != 0 {
		t.Errorf("expected no accrual with a coupon code present, got %v", state.Totals.PointsEarned)
	}
	if state.Totals.CouponCut != 0 {
		t.Errorf("expected no cut for unmatched code, got %v", state.Totals.CouponCut)
	}

	state = f.svc.ClearCoupon(context.Background())
	if state.Totals.PointsEarned != 4 {
		t.Errorf("expected accrual restored after clearing code, got %v", state.Totals.PointsEarned)
	}
}

func TestPointsUsedClampedToBalance(t *testing.T) {
	f := newPosFixture()
	customer := &entity.Customer{Name: "Luz", Phone: "5550002222", Points: 30}
	if err := f.customers.Create(context.Background(), customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	f.addLine(t, 100)
	if _, err := f.svc.SetCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("set customer: %v", err)
	}

	state := f.svc.SetPointsUsed(context.Background(), 500)
	if state.Totals.PointsUse != 30 {
		t.Errorf("expected points clamped to balance 30, got %v", state.Totals.PointsUse)
	}
	if state.Totals.Total != 70 {
		t.Errorf("expected total 70 after points, got %v", state.Totals.Total)
	}
}

func TestTipsBlockedWithoutGlobalStylists(t *testing.T) {
	f := newPosFixture()
	f.addLine(t, 100)

	stylistID := uuid.New()
	state := f.svc.SetTip(context.Background(), stylistID, 50)
	if !state.Totals.TipBlocked {
		t.Errorf("expected tips blocked with no stylist selected")
	}
	if state.Totals.TipTotal != 0 {
		t.Errorf("expected tip total forced to 0, got %v", state.Totals.TipTotal)
	}

	state = f.svc.SetGlobalStylists(context.Background(), []ticket.StylistShare{
		{ID: stylistID, Name: "Mia", Pct: 100},
	})
	if state.Totals.TipBlocked {
		t.Errorf("expected tips unblocked with a stylist selected")
	}
	if state.Totals.TipTotal != 50 {
		t.Errorf("expected tip total 50, got %v", state.Totals.TipTotal)
	}
	if state.Totals.Total != 150 {
		t.Errorf("expected total 150 with untaxed tip, got %v", state.Totals.Total)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := newPosFixture()
	f.addLine(t, 120)

	if err := f.svc.SaveSnapshot(context.Background()); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if f.snapshots.snapshot == nil {
		t.Fatalf("expected a stored snapshot")
	}

	restored := NewPosService(f.settings, f.coupons, f.customers, f.catalog, f.stylists, f.orders, f.snapshots)
	if err := restored.RestoreSnapshot(context.Background()); err != nil {
		t.Fatalf("restore snapshot: %v", err)
	}
	state := restored.State(context.Background())
	if len(state.Cart.Lines) != 1 || state.Cart.Lines[0].Variant.Price != 120 {
		t.Fatalf("expected restored cart with the saved line, got %+v", state.Cart.Lines)
	}
}

func TestRestoreDiscardsCorruptSnapshot(t *testing.T) {
	f := newPosFixture()
	f.snapshots.snapshot = &entity.CartSnapshot{Payload: "{not json"}

	if err := f.svc.RestoreSnapshot(context.Background()); err != nil {
		t.Fatalf("restore should swallow corrupt payloads, got %v", err)
	}
	if f.snapshots.snapshot != nil {
		t.Errorf("expected corrupt snapshot cleared")
	}
	if len(f.svc.State(context.Background()).Cart.Lines) != 0 {
		t.Errorf("expected an empty cart after discarding")
	}
}

func TestSaveSnapshotClearsWhenEmpty(t *testing.T) {
	f := newPosFixture()
	f.snapshots.snapshot = &entity.CartSnapshot{Payload: "{}"}

	if err := f.svc.SaveSnapshot(context.Background()); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if f.snapshots.snapshot != nil {
		t.Errorf("expected empty cart to clear the stored snapshot")
	}
}
