package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/ticket"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/money"
	"github.com/google/uuid"
)

// PosService owns the single active ticket of the terminal. All cart
// mutations go through it under one mutex, and every mutation returns the
// freshly priced state so the client never renders stale totals.
type PosService struct {
	mu   sync.Mutex
	cart *ticket.Cart

	settingsRepo repository.SettingsRepository
	couponRepo   repository.CouponRepository
	customerRepo repository.CustomerRepository
	catalogRepo  repository.CatalogRepository
	stylistRepo  repository.StylistRepository
	orderRepo    repository.OrderRepository
	snapshotRepo repository.SnapshotRepository
}

// NewPosService creates a new POS service with an empty ticket
func NewPosService(
	settingsRepo repository.SettingsRepository,
	couponRepo repository.CouponRepository,
	customerRepo repository.CustomerRepository,
	catalogRepo repository.CatalogRepository,
	stylistRepo repository.StylistRepository,
	orderRepo repository.OrderRepository,
	snapshotRepo repository.SnapshotRepository,
) *PosService {
	return &PosService{
		cart:         ticket.NewCart(),
		settingsRepo: settingsRepo,
		couponRepo:   couponRepo,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		stylistRepo:  stylistRepo,
		orderRepo:    orderRepo,
		snapshotRepo: snapshotRepo,
	}
}

// TicketState is the cart plus its current totals, returned by every
// mutation so display and charge always agree
type TicketState struct {
	Cart   *ticket.Cart  `json:"cart"`
	Totals ticket.Totals `json:"totals"`
}

func (s *PosService) pricingConfig(ctx context.Context) ticket.Config {
	cfg := ticket.Config{IVARate: 0.16, LoyaltyRate: 0.02, CommissionCap: 20}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Printf("load settings: %v", err)
		return cfg
	}
	if settings != nil {
		cfg.IVARate = settings.IVARate
		cfg.LoyaltyRate = settings.LoyaltyRate
		cfg.CommissionCap = settings.CommissionCap
	}
	return cfg
}

func (s *PosService) couponLookup() ticket.CouponLookup {
	return ticket.CouponLookupFunc(func(ctx context.Context, code string) (*ticket.Coupon, error) {
		c, err := s.couponRepo.FindActiveByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, nil
		}
		return c.ToTicket(), nil
	})
}

// state recomputes totals for the current cart. Caller holds the mutex.
func (s *PosService) state(ctx context.Context) *TicketState {
	totals := ticket.ComputeTotals(ctx, s.cart, s.pricingConfig(ctx), s.couponLookup())
	return &TicketState{Cart: s.cart, Totals: totals}
}

// State returns the active ticket with fresh totals
func (s *PosService) State(ctx context.Context) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx)
}

// NewTicket discards the active ticket and starts an empty one
func (s *PosService) NewTicket(ctx context.Context) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Reset()
	if err := s.snapshotRepo.Clear(ctx); err != nil {
		log.Printf("clear cart snapshot: %v", err)
	}
	return s.state(ctx)
}

// AddVariant appends a catalog variant to the ticket
func (s *PosService) AddVariant(ctx context.Context, variantID uuid.UUID, qty int) (*TicketState, error) {
	variant, err := s.catalogRepo.GetVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, apperror.NewNotFoundError("Variant")
	}

	name := variant.Name
	if variant.Product.Name != "" {
		name = variant.Product.Name + " " + variant.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddLine(ticket.Line{
		Variant: ticket.VariantRef{ID: variant.ID, Name: name, Price: variant.Price},
		Qty:     qty,
	})
	return s.state(ctx), nil
}

// RemoveLine drops the line at index
func (s *PosService) RemoveLine(ctx context.Context, index int) (*TicketState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return nil, apperror.NewBadRequestError("Line index out of range")
	}
	s.cart.RemoveLine(index)
	return s.state(ctx), nil
}

// UpdateLineQty changes a line's quantity; values below 1 are raised to 1
func (s *PosService) UpdateLineQty(ctx context.Context, index, qty int) (*TicketState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return nil, apperror.NewBadRequestError("Line index out of range")
	}
	if qty < 1 {
		qty = 1
	}
	s.cart.Lines[index].Qty = qty
	return s.state(ctx), nil
}

// SetLineDiscount sets a flat discount on one line
func (s *PosService) SetLineDiscount(ctx context.Context, index int, discount float64) (*TicketState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return nil, apperror.NewBadRequestError("Line index out of range")
	}
	if discount < 0 {
		discount = 0
	}
	s.cart.Lines[index].Discount = discount
	return s.state(ctx), nil
}

// SetLineAdjust sets or clears the signed adjustment on one line
func (s *PosService) SetLineAdjust(ctx context.Context, index int, adjust *ticket.Adjust) (*TicketState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return nil, apperror.NewBadRequestError("Line index out of range")
	}
	s.cart.Lines[index].Adjust = adjust
	return s.state(ctx), nil
}

// SetLineStylists replaces the stylist assignment on one line
func (s *PosService) SetLineStylists(ctx context.Context, index int, stylists []ticket.StylistShare) (*TicketState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return nil, apperror.NewBadRequestError("Line index out of range")
	}
	if stylists == nil {
		stylists = []ticket.StylistShare{}
	}
	s.cart.Lines[index].Stylists = stylists
	return s.state(ctx), nil
}

// SetCustomer attaches a customer to the ticket; attaching resets any
// points already in use since the new balance may not cover them
func (s *PosService) SetCustomer(ctx context.Context, customerID uuid.UUID) (*TicketState, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Customer = &ticket.CustomerRef{
		ID:     customer.ID,
		Name:   customer.Name,
		Points: customer.Points,
	}
	s.cart.PointsUsed = 0
	return s.state(ctx), nil
}

// ClearCustomer detaches the customer and clears points in use
func (s *PosService) ClearCustomer(ctx context.Context) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Customer = nil
	s.cart.PointsUsed = 0
	return s.state(ctx)
}

// ApplyCoupon sets the coupon code; validity is decided at pricing time
func (s *PosService) ApplyCoupon(ctx context.Context, code string) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.CouponCode = code
	return s.state(ctx)
}

// ClearCoupon removes the coupon code
func (s *PosService) ClearCoupon(ctx context.Context) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.CouponCode = ""
	s.cart.AppliedCoupon = nil
	return s.state(ctx)
}

// SetPointsUsed requests a points redemption; pricing clamps it to the
// customer's balance and the ticket's remaining base
func (s *PosService) SetPointsUsed(ctx context.Context, points float64) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if points < 0 {
		points = 0
	}
	s.cart.PointsUsed = points
	return s.state(ctx)
}

// SetTip sets the tip amount for one stylist
func (s *PosService) SetTip(ctx context.Context, stylistID uuid.UUID, amount float64) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount < 0 {
		amount = 0
	}
	s.cart.SetTip(stylistID, amount)
	return s.state(ctx)
}

// RemoveTip drops the tip allocation for one stylist
func (s *PosService) RemoveTip(ctx context.Context, stylistID uuid.UUID) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveTip(stylistID)
	return s.state(ctx)
}

// DistributeTip splits a tip total evenly across the ticket's recipients:
// line stylists first, then the global selection, then the full roster
func (s *PosService) DistributeTip(ctx context.Context, total float64) (*TicketState, error) {
	stylists, err := s.stylistRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := rosterShares(stylists)

	s.mu.Lock()
	defer s.mu.Unlock()
	if total < 0 {
		total = 0
	}
	ticket.DistributeTipEvenly(s.cart, ticket.TipRecipients(s.cart, roster), total)
	return s.state(ctx), nil
}

// ToggleGlobalStylist adds or removes a stylist in the ticket-wide
// selection, rebalancing percentages to sum to 100 after each change
func (s *PosService) ToggleGlobalStylist(ctx context.Context, stylistID uuid.UUID) (*TicketState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.cart.StylistsGlobal {
		if st.ID == stylistID {
			s.cart.StylistsGlobal = append(s.cart.StylistsGlobal[:i], s.cart.StylistsGlobal[i+1:]...)
			s.cart.StylistsGlobal = ticket.AutoBalance(s.cart.StylistsGlobal)
			return s.state(ctx), nil
		}
	}

	stylist, err := s.stylistRepo.GetByID(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	if stylist == nil {
		return nil, apperror.NewNotFoundError("Stylist")
	}
	s.cart.StylistsGlobal = append(s.cart.StylistsGlobal, ticket.StylistShare{
		ID:   stylist.ID,
		Name: stylist.Name,
		Pct:  stylist.Pct,
	})
	s.cart.StylistsGlobal = ticket.AutoBalance(s.cart.StylistsGlobal)
	return s.state(ctx), nil
}

// SetGlobalStylists replaces the ticket-wide stylist selection as given,
// without rebalancing
func (s *PosService) SetGlobalStylists(ctx context.Context, shares []ticket.StylistShare) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if shares == nil {
		shares = []ticket.StylistShare{}
	}
	s.cart.StylistsGlobal = shares
	return s.state(ctx)
}

// AutoBalanceStylists rescales the global shares to sum to 100
func (s *PosService) AutoBalanceStylists(ctx context.Context) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.StylistsGlobal = ticket.AutoBalance(s.cart.StylistsGlobal)
	return s.state(ctx)
}

// SetGlobalDiscount sets the ticket-wide discount
func (s *PosService) SetGlobalDiscount(ctx context.Context, amount float64, discountType ticket.DiscountType) (*TicketState, error) {
	if discountType != ticket.DiscountAmount && discountType != ticket.DiscountPercent {
		return nil, apperror.NewBadRequestError("Unknown discount type")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount < 0 {
		amount = 0
	}
	s.cart.GlobalDiscount = amount
	s.cart.GlobalDiscountType = discountType
	return s.state(ctx), nil
}

// RegisterPayments validates and overwrites the ticket's payment list
// against the current total
func (s *PosService) RegisterPayments(ctx context.Context, in ticket.PaymentInput) *TicketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := ticket.ComputeTotals(ctx, s.cart, s.pricingConfig(ctx), s.couponLookup())
	ticket.ValidatePayments(s.cart, in, totals.Total)
	return &TicketState{Cart: s.cart, Totals: totals}
}

// CloseTicket settles the active ticket: totals are recomputed one final
// time, the order is persisted with its derived lines and tips in a
// single transaction, earned points are credited, and the cart resets.
// Points used are never debited here; they only cap what pricing allows.
func (s *PosService) CloseTicket(ctx context.Context, cashierID *uuid.UUID) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart.Lines) == 0 {
		return nil, apperror.ErrEmptyTicket
	}

	cfg := s.pricingConfig(ctx)
	totals := ticket.ComputeTotals(ctx, s.cart, cfg, s.couponLookup())

	if len(s.cart.Payments) == 0 {
		return nil, apperror.ErrNoPayments
	}

	now := time.Now()
	order := &entity.Order{
		Folio:           ticket.Folio(now),
		ClosedAt:        now,
		CashierID:       cashierID,
		Subtotal:        totals.Subtotal,
		CouponCut:       totals.CouponCut,
		PointsUsed:      totals.PointsUse,
		PointsEarned:    totals.PointsEarned,
		IVA:             totals.IVA,
		TipTotal:        totals.TipTotal,
		CommissionTotal: totals.CommissionTotal,
		GlobalDiscount:  totals.GlobalDiscount,
		Total:           totals.Total,
		Payments:        entity.PaymentList(s.cart.Payments),
		StylistsGlobal:  entity.StylistShareList(s.cart.StylistsGlobal),
	}
	if s.cart.AppliedCoupon != nil {
		order.CouponCode = s.cart.AppliedCoupon.Code
	}
	if s.cart.Customer != nil {
		id := s.cart.Customer.ID
		order.CustomerID = &id
		order.CustomerName = s.cart.Customer.Name
	}

	lines := make([]entity.OrderLine, 0, len(s.cart.Lines))
	for _, l := range s.cart.Lines {
		lines = append(lines, entity.OrderLine{
			VariantID:   l.Variant.ID,
			VariantName: l.Variant.Name,
			UnitPrice:   l.Variant.Price,
			Qty:         l.Qty,
			Discount:    l.Discount,
			Adjust:      l.Adjust.Signed(),
			Base:        money.Round2(l.Base()),
			LineTotal:   money.Round2(l.Total()),
			Commission:  money.Round2(l.Commission(cfg.CommissionCap)),
			Stylists:    entity.StylistShareList(l.Stylists),
		})
	}

	var tips []entity.Tip
	if !totals.TipBlocked {
		for _, t := range s.cart.TipAlloc {
			if t.Amount <= 0 {
				continue
			}
			tips = append(tips, entity.Tip{
				StylistID: t.StylistID,
				Amount:    money.Round2(t.Amount),
			})
		}
	}

	if err := s.orderRepo.CreateWithDerived(ctx, order, lines, tips); err != nil {
		log.Printf("close ticket %s: %v", order.Folio, err)
		return nil, apperror.NewPersistenceError("order")
	}

	if s.cart.Customer != nil && totals.PointsEarned > 0 {
		customer, err := s.customerRepo.GetByID(ctx, s.cart.Customer.ID)
		if err == nil && customer != nil {
			customer.Points = money.Round2(customer.Points + totals.PointsEarned)
			if err := s.customerRepo.Update(ctx, customer); err != nil {
				log.Printf("credit points for %s: %v", customer.ID, err)
			}
		}
	}

	s.cart.Reset()
	if err := s.snapshotRepo.Clear(ctx); err != nil {
		log.Printf("clear cart snapshot: %v", err)
	}

	return order, nil
}

// SaveSnapshot serializes the active ticket for crash recovery. It is
// called on a schedule; an empty cart clears the stored snapshot instead.
func (s *PosService) SaveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart.Lines) == 0 && s.cart.Customer == nil {
		return s.snapshotRepo.Clear(ctx)
	}

	payload, err := json.Marshal(s.cart)
	if err != nil {
		return err
	}
	return s.snapshotRepo.Save(ctx, &entity.CartSnapshot{Payload: string(payload)})
}

// RestoreSnapshot loads the last saved ticket, if any, into the cart. It
// is called once at startup; a corrupt payload is discarded.
func (s *PosService) RestoreSnapshot(ctx context.Context) error {
	snapshot, err := s.snapshotRepo.Load(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil || snapshot.Payload == "" {
		return nil
	}

	var cart ticket.Cart
	if err := json.Unmarshal([]byte(snapshot.Payload), &cart); err != nil {
		log.Printf("discarding corrupt cart snapshot: %v", err)
		return s.snapshotRepo.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = &cart
	log.Printf("restored ticket snapshot from %s", snapshot.SavedAt.Format(time.RFC3339))
	return nil
}
