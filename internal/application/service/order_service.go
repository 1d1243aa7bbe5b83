package service

import (
	"context"
	"fmt"
	"log"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/DonIsaac10/Sistema-POS/pkg/printer"
	"github.com/google/uuid"
)

// OrderService exposes the read side of closed orders and receipt printing
type OrderService struct {
	orderRepo    repository.OrderRepository
	printer      printer.Printer
	receiptWidth int
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, p printer.Printer, receiptWidth int) *OrderService {
	if receiptWidth <= 0 {
		receiptWidth = 32
	}
	return &OrderService{
		orderRepo:    orderRepo,
		printer:      p,
		receiptWidth: receiptWidth,
	}
}

// GetOrder retrieves a closed order with its lines and tips
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists closed orders with pagination, range and search filters
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// PrintReceipt renders an order as an ESC/POS receipt and sends it to the
// configured printer. With no printer attached the render still happens,
// so a misconfigured terminal surfaces formatting errors early.
func (s *OrderService) PrintReceipt(ctx context.Context, id uuid.UUID) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	doc := s.renderReceipt(order)
	if err := s.printer.Print(doc.Bytes()); err != nil {
		log.Printf("print receipt %s: %v", order.Folio, err)
		return apperror.NewAppError(503, "Printer unavailable")
	}
	return nil
}

func (s *OrderService) renderReceipt(order *entity.Order) *printer.Document {
	doc := printer.NewDocument(s.receiptWidth)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text("TICKET").
		SetFontSize(printer.FontNormal).
		Text(order.Folio).
		Text(order.ClosedAt.Format("02/01/2006 15:04")).
		LineFeed().
		SetAlign(printer.AlignLeft)

	if order.CustomerName != "" {
		doc.Text("Cliente: " + order.CustomerName)
	}
	doc.Separator('-')

	for _, l := range order.Lines {
		doc.ItemLine(l.Qty, l.VariantName, pesos(l.LineTotal))
		if l.Discount > 0 {
			doc.KeyValue("  descuento", "-"+pesos(l.Discount))
		}
		if l.Adjust != 0 {
			doc.KeyValue("  ajuste", pesos(l.Adjust))
		}
	}

	doc.Separator('-').
		KeyValue("Subtotal", pesos(order.Subtotal))
	if order.CouponCut > 0 {
		doc.KeyValue("Cupon "+order.CouponCode, "-"+pesos(order.CouponCut))
	}
	if order.PointsUsed > 0 {
		doc.KeyValue("Puntos", "-"+pesos(order.PointsUsed))
	}
	if order.GlobalDiscount > 0 {
		doc.KeyValue("Descuento", "-"+pesos(order.GlobalDiscount))
	}
	doc.KeyValue("IVA incluido", pesos(order.IVA))
	if order.TipTotal > 0 {
		doc.KeyValue("Propina", pesos(order.TipTotal))
	}
	doc.SetBold(true).
		KeyValue("TOTAL", pesos(order.Total)).
		SetBold(false).
		Separator('-')

	for _, p := range order.Payments {
		doc.KeyValue(p.Method, pesos(p.Amount))
	}
	if order.PointsEarned > 0 {
		doc.LineFeed().
			SetAlign(printer.AlignCenter).
			TextF("Ganaste %s en puntos", pesos(order.PointsEarned))
	}

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Gracias por su visita").
		FeedLines(3).
		Cut()

	return doc
}

func pesos(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
