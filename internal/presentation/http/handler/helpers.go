package handler

import (
	"strconv"
	"time"

	"github.com/DonIsaac10/Sistema-POS/pkg/apperror"
	"github.com/DonIsaac10/Sistema-POS/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCashierID extracts the authenticated cashier ID from the context
func GetCashierID(c *gin.Context) *uuid.UUID {
	v, exists := c.Get("cashier_id")
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// ParseIDParam parses the :id path parameter as a UUID
func ParseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid ID")
	}
	return id, nil
}

// PaginationFromQuery builds pagination params from page/per_page query values
func PaginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}
}

// RangeFromQuery parses from/to query values. Dates accept either a plain
// day (2006-01-02) or RFC 3339; a plain "to" day extends to end of day.
// Missing values default to the current day.
func RangeFromQuery(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	if raw := c.Query("from"); raw != "" {
		parsed, _, err := parseDateQuery(raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewFieldError("from", "unrecognized date")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, endOfDay, err := parseDateQuery(raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewFieldError("to", "unrecognized date")
		}
		if endOfDay {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		to = parsed
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("Range end precedes start")
	}
	return from, to, nil
}

func parseDateQuery(raw string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	return t, false, err
}

// ParseOptionalDate parses an RFC 3339 date from a request body field,
// defaulting to now when empty
func ParseOptionalDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
