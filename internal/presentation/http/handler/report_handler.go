package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/DonIsaac10/Sistema-POS/internal/application/service"
	"github.com/DonIsaac10/Sistema-POS/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report and export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns income/expense aggregates for a range
func (h *ReportHandler) Summary(c *gin.Context) {
	from, to, err := RangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.reportService.Summary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report summary", summary)
}

// ExportCSV streams the movements CSV for a range
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	from, to, err := RangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.reportService.ExportMovementsCSV(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("movimientos_%s_%s.csv",
		from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/csv; charset=utf-8", data)
}

// ImportExpenses bulk-loads expenses from a JSON array body
func (h *ReportHandler) ImportExpenses(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.BadRequest(c, "Could not read request body")
		return
	}

	count, err := h.reportService.ImportExpensesJSON(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expenses imported", gin.H{
		"imported": count,
		"at":       time.Now().UTC().Format(time.RFC3339),
	})
}
