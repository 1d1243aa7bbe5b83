package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/domain/entity"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/enum"
	"github.com/DonIsaac10/Sistema-POS/internal/domain/repository"
	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/money"
)

// ReportService builds income/expense aggregates and the movements export
type ReportService struct {
	orderRepo    repository.OrderRepository
	expenseRepo  repository.ExpenseRepository
	purchaseRepo repository.PurchaseRepository
	payrollRepo  repository.PayrollRepository
}

// NewReportService creates a new report service
func NewReportService(
	orderRepo repository.OrderRepository,
	expenseRepo repository.ExpenseRepository,
	purchaseRepo repository.PurchaseRepository,
	payrollRepo repository.PayrollRepository,
) *ReportService {
	return &ReportService{
		orderRepo:    orderRepo,
		expenseRepo:  expenseRepo,
		purchaseRepo: purchaseRepo,
		payrollRepo:  payrollRepo,
	}
}

// DayFlow is one day's income and outflow inside a report range
type DayFlow struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	OrderCount int     `json:"order_count"`
	Income     float64 `json:"income"`
	Outflow    float64 `json:"outflow"`
	Net        float64 `json:"net"`
}

// RangeSummary is the aggregate view for a date range
type RangeSummary struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	OrderCount    int       `json:"order_count"`
	Income        float64   `json:"income"`
	TipTotal      float64   `json:"tip_total"`
	IVATotal      float64   `json:"iva_total"`
	Commissions   float64   `json:"commissions"`
	ExpenseCount  int       `json:"expense_count"`
	ExpenseTotal  float64   `json:"expense_total"`
	Net           float64   `json:"net"`
	AverageTicket float64   `json:"average_ticket"`
	Daily         []DayFlow `json:"daily"`
}

// Summary aggregates closed orders against the range's outflows: executed
// expenses, executed supplier purchases and payroll already paid out.
// Pending records are excluded.
func (s *ReportService) Summary(ctx context.Context, from, to time.Time) (*RangeSummary, error) {
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("Range end precedes start")
	}

	orders, err := s.orderRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payroll, err := s.payrollRepo.List(ctx, &repository.PayrollFilterParams{
		From:   &from,
		To:     &to,
		Status: enum.PayrollPaid,
	})
	if err != nil {
		return nil, err
	}

	days := map[string]*DayFlow{}
	dayOf := func(t time.Time) *DayFlow {
		key := t.Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &DayFlow{Date: key}
			days[key] = d
		}
		return d
	}

	out := &RangeSummary{From: from, To: to}
	for _, o := range orders {
		out.OrderCount++
		out.Income += o.Total
		out.TipTotal += o.TipTotal
		out.IVATotal += o.IVA
		out.Commissions += o.CommissionTotal
		d := dayOf(o.ClosedAt)
		d.OrderCount++
		d.Income += o.Total
	}
	for _, e := range expenses {
		if e.Status != enum.ExpenseExecuted {
			continue
		}
		out.ExpenseCount++
		out.ExpenseTotal += e.Amount
		dayOf(e.Date).Outflow += e.Amount
	}
	for _, p := range purchases {
		if p.Status != enum.ExpenseExecuted {
			continue
		}
		out.ExpenseCount++
		out.ExpenseTotal += p.Amount
		dayOf(p.Date).Outflow += p.Amount
	}
	for _, e := range payroll {
		out.ExpenseCount++
		out.ExpenseTotal += e.Amount
		dayOf(e.Date).Outflow += e.Amount
	}

	out.Income = money.Round2(out.Income)
	out.TipTotal = money.Round2(out.TipTotal)
	out.IVATotal = money.Round2(out.IVATotal)
	out.Commissions = money.Round2(out.Commissions)
	out.ExpenseTotal = money.Round2(out.ExpenseTotal)
	out.Net = money.Round2(out.Income - out.ExpenseTotal)
	if out.OrderCount > 0 {
		out.AverageTicket = money.Round2(out.Income / float64(out.OrderCount))
	}

	out.Daily = make([]DayFlow, 0, len(days))
	for _, d := range days {
		d.Income = money.Round2(d.Income)
		d.Outflow = money.Round2(d.Outflow)
		d.Net = money.Round2(d.Income - d.Outflow)
		out.Daily = append(out.Daily, *d)
	}
	sort.Slice(out.Daily, func(i, j int) bool { return out.Daily[i].Date < out.Daily[j].Date })

	return out, nil
}

// ExportMovementsCSV renders orders and executed expenses in a range as a
// single CSV: orders with positive totals, expenses negated
func (s *ReportService) ExportMovementsCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("Range end precedes start")
	}

	orders, err := s.orderRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Tipo", "Folio/ID", "Fecha", "Nombre", "Total"}); err != nil {
		return nil, err
	}

	for _, o := range orders {
		name := o.CustomerName
		if name == "" {
			name = "Cliente general"
		}
		record := []string{
			"Orden",
			o.Folio,
			o.ClosedAt.Format("2006-01-02"),
			name,
			strconv.FormatFloat(money.Round2(o.Total), 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	for _, e := range expenses {
		if e.Status != enum.ExpenseExecuted {
			continue
		}
		record := []string{
			"Gasto",
			e.ID.String(),
			e.Date.Format("2006-01-02"),
			e.Name,
			strconv.FormatFloat(money.Round2(-e.Amount), 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportedExpense is the shape of one record in the JSON import payload.
// The keys match the export vocabulary of the desktop frontends, hence
// the Spanish names.
type ImportedExpense struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Category    string  `json:"categoria"`
	Amount      float64 `json:"monto"`
	Date        string  `json:"fecha"` // DD/MM/YYYY or RFC 3339
	Status      string  `json:"estado"`
}

// ImportExpensesJSON bulk-loads expenses from a JSON array. A record's
// name is nombre, falling back to descripcion; records with neither or a
// non-positive amount are rejected with field errors before anything is
// written.
func (s *ReportService) ImportExpensesJSON(ctx context.Context, payload []byte) (int, error) {
	var imported []ImportedExpense
	if err := json.Unmarshal(payload, &imported); err != nil {
		return 0, apperror.NewBadRequestError("Invalid JSON payload")
	}
	if len(imported) == 0 {
		return 0, apperror.NewBadRequestError("No expenses in payload")
	}

	var fieldErrors []apperror.FieldError
	expenses := make([]entity.Expense, 0, len(imported))
	for i, rec := range imported {
		idx := strconv.Itoa(i)
		name := rec.Name
		if name == "" {
			name = rec.Description
		}
		if name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "[" + idx + "].nombre", Message: "required"})
			continue
		}
		if rec.Amount <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "[" + idx + "].monto", Message: "must be greater than zero"})
			continue
		}

		date := time.Now()
		if rec.Date != "" {
			parsed, err := parseImportDate(rec.Date)
			if err != nil {
				fieldErrors = append(fieldErrors, apperror.FieldError{Field: "[" + idx + "].fecha", Message: "unrecognized date"})
				continue
			}
			date = parsed
		}

		status := enum.ExpenseStatus(rec.Status)
		if !status.IsValid() {
			status = enum.ExpenseExecuted
		}

		expenses = append(expenses, entity.Expense{
			Name:        name,
			Description: rec.Description,
			Category:    rec.Category,
			Amount:      money.Round2(rec.Amount),
			Date:        date,
			Status:      status,
		})
	}

	if len(fieldErrors) > 0 {
		return 0, apperror.NewValidationError(fieldErrors)
	}
	if err := s.expenseRepo.CreateBatch(ctx, expenses); err != nil {
		return 0, err
	}
	return len(expenses), nil
}

func parseImportDate(s string) (time.Time, error) {
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
