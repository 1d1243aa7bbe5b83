package service

import (
	"context"
	"strings"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fakeSettingsRepo struct {
	settings *entity.Settings
	getErr   error
	saves    int
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	return f.settings, f.getErr
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.Settings) error {
	f.settings = settings
	f.saves++
	return nil
}

type fakeCouponRepo struct {
	coupons []*entity.Coupon
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	f.coupons = append(f.coupons, coupon)
	return nil
}

func (f *fakeCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range f.coupons {
		if c.Active && c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, coupon *entity.Coupon) error {
	for i, c := range f.coupons {
		if c.ID == coupon.ID {
			f.coupons[i] = coupon
		}
	}
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.coupons[:0]
	for _, c := range f.coupons {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.coupons = kept
	return nil
}

func (f *fakeCouponRepo) List(ctx context.Context) ([]entity.Coupon, error) {
	out := make([]entity.Coupon, 0, len(f.coupons))
	for _, c := range f.coupons {
		out = append(out, *c)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
	updateErr error
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, c := range f.customers {
		if c.ID == customer.ID {
			f.customers[i] = customer
		}
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.customers[:0]
	for _, c := range f.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.customers = kept
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeCatalogRepo struct {
	products []*entity.Product
	variants []*entity.Variant
}

func (f *fakeCatalogRepo) CreateProduct(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products = append(f.products, product)
	return nil
}

func (f *fakeCatalogRepo) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepo) UpdateProduct(ctx context.Context, product *entity.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
		}
	}
	return nil
}

func (f *fakeCatalogRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.products = kept
	return nil
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context, search string) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateVariant(ctx context.Context, variant *entity.Variant) error {
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	f.variants = append(f.variants, variant)
	return nil
}

func (f *fakeCatalogRepo) GetVariant(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	for _, v := range f.variants {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepo) UpdateVariant(ctx context.Context, variant *entity.Variant) error {
	for i, v := range f.variants {
		if v.ID == variant.ID {
			f.variants[i] = variant
		}
	}
	return nil
}

func (f *fakeCatalogRepo) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	kept := f.variants[:0]
	for _, v := range f.variants {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	f.variants = kept
	return nil
}

type fakeStylistRepo struct {
	stylists []*entity.Stylist
}

func (f *fakeStylistRepo) Create(ctx context.Context, stylist *entity.Stylist) error {
	if stylist.ID == uuid.Nil {
		stylist.ID = uuid.New()
	}
	f.stylists = append(f.stylists, stylist)
	return nil
}

func (f *fakeStylistRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Stylist, error) {
	for _, s := range f.stylists {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStylistRepo) Update(ctx context.Context, stylist *entity.Stylist) error {
	for i, s := range f.stylists {
		if s.ID == stylist.ID {
			f.stylists[i] = stylist
		}
	}
	return nil
}

func (f *fakeStylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.stylists[:0]
	for _, s := range f.stylists {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.stylists = kept
	return nil
}

func (f *fakeStylistRepo) List(ctx context.Context) ([]entity.Stylist, error) {
	out := make([]entity.Stylist, 0, len(f.stylists))
	for _, s := range f.stylists {
		out = append(out, *s)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders    []entity.Order
	lines     []entity.OrderLine
	tips      []entity.Tip
	createErr error
}

func (f *fakeOrderRepo) CreateWithDerived(ctx context.Context, order *entity.Order, lines []entity.OrderLine, tips []entity.Tip) error {
	if f.createErr != nil {
		return f.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		lines[i].OrderID = order.ID
	}
	for i := range tips {
		if tips[i].ID == uuid.Nil {
			tips[i].ID = uuid.New()
		}
		tips[i].OrderID = order.ID
		tips[i].ClosedAt = order.ClosedAt
	}
	f.orders = append(f.orders, *order)
	f.lines = append(f.lines, lines...)
	f.tips = append(f.tips, tips...)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := f.GetByID(ctx, id)
	if err != nil || order == nil {
		return order, err
	}
	out := *order
	for _, l := range f.lines {
		if l.OrderID == id {
			out.Lines = append(out.Lines, l)
		}
	}
	for _, t := range f.tips {
		if t.OrderID == id {
			out.Tips = append(out.Tips, t)
		}
	}
	return &out, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return f.orders, int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if !o.ClosedAt.Before(from) && !o.ClosedAt.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListLinesInRange(ctx context.Context, from, to time.Time) ([]entity.OrderLine, error) {
	closed := map[uuid.UUID]time.Time{}
	for _, o := range f.orders {
		closed[o.ID] = o.ClosedAt
	}
	var out []entity.OrderLine
	for _, l := range f.lines {
		at := closed[l.OrderID]
		if !at.Before(from) && !at.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListTipsInRange(ctx context.Context, from, to time.Time) ([]entity.Tip, error) {
	var out []entity.Tip
	for _, t := range f.tips {
		if !t.ClosedAt.Before(from) && !t.ClosedAt.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeSnapshotRepo struct {
	snapshot *entity.CartSnapshot
	clears   int
}

func (f *fakeSnapshotRepo) Load(ctx context.Context) (*entity.CartSnapshot, error) {
	return f.snapshot, nil
}

func (f *fakeSnapshotRepo) Save(ctx context.Context, snapshot *entity.CartSnapshot) error {
	snapshot.SavedAt = time.Now()
	f.snapshot = snapshot
	return nil
}

func (f *fakeSnapshotRepo) Clear(ctx context.Context) error {
	f.snapshot = nil
	f.clears++
	return nil
}

type fakePayrollRepo struct {
	entries []*entity.PayrollEntry
}

func (f *fakePayrollRepo) Create(ctx context.Context, entry *entity.PayrollEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, entry *entity.PayrollEntry) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
		}
	}
	return nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakePayrollRepo) List(ctx context.Context, params *repository.PayrollFilterParams) ([]entity.PayrollEntry, error) {
	var out []entity.PayrollEntry
	for _, e := range f.entries {
		if params != nil {
			if params.From != nil && e.Date.Before(*params.From) {
				continue
			}
			if params.To != nil && e.Date.After(*params.To) {
				continue
			}
			if params.StylistID != nil && e.StylistID != *params.StylistID {
				continue
			}
			if params.Status != "" && e.Status != params.Status {
				continue
			}
		}
		out = append(out, *e)
	}
	return out, nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) CreateBatch(ctx context.Context, expenses []entity.Expense) error {
	for i := range expenses {
		e := expenses[i]
		if err := f.Create(ctx, &e); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	for i, e := range f.expenses {
		if e.ID == expense.ID {
			f.expenses[i] = expense
		}
	}
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.expenses[:0]
	for _, e := range f.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.expenses = kept
	return nil
}

func (f *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0, len(f.expenses))
	for _, e := range f.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, e := range f.expenses {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases []*entity.Purchase
}

func (f *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	for _, p := range f.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	for i, p := range f.purchases {
		if p.ID == purchase.ID {
			f.purchases[i] = purchase
		}
	}
	return nil
}

func (f *fakePurchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := f.purchases[:0]
	for _, p := range f.purchases {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.purchases = kept
	return nil
}

func (f *fakePurchaseRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	out := make([]entity.Purchase, 0, len(f.purchases))
	for _, p := range f.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePurchaseRepo) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Purchase, error) {
	var out []entity.Purchase
	for _, p := range f.purchases {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeCashierRepo struct {
	cashiers []*entity.Cashier
}

func (f *fakeCashierRepo) Create(ctx context.Context, cashier *entity.Cashier) error {
	if cashier.ID == uuid.Nil {
		cashier.ID = uuid.New()
	}
	f.cashiers = append(f.cashiers, cashier)
	return nil
}

func (f *fakeCashierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error) {
	for _, c := range f.cashiers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCashierRepo) GetByUsername(ctx context.Context, username string) (*entity.Cashier, error) {
	for _, c := range f.cashiers {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCashierRepo) List(ctx context.Context) ([]entity.Cashier, error) {
	out := make([]entity.Cashier, 0, len(f.cashiers))
	for _, c := range f.cashiers {
		out = append(out, *c)
	}
	return out, nil
}
