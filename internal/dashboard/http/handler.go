package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/dashboard"
	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/response"
)

const defaultReportWindow = 30 * 24 * time.Hour

// Handler serves the dashboard endpoints.
type Handler struct {
	service dashboard.Service
}

// NewHandler creates a dashboard handler.
func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, NewStatsResponse(stats), "")
}

// Report streams a PDF sales summary for the requested date range,
// defaulting to the last 30 days.
func (h *Handler) Report(c *gin.Context) {
	to := time.Now().UTC()
	from := to.Add(-defaultReportWindow)

	var violations []apperror.FieldViolation
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			violations = append(violations, apperror.FieldViolation{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			violations = append(violations, apperror.FieldViolation{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			// Make the range inclusive of the whole end day.
			to = t.AddDate(0, 0, 1)
		}
	}
	if len(violations) == 0 && !from.Before(to) {
		violations = append(violations, apperror.FieldViolation{Field: "from", Message: "must be before to"})
	}
	if len(violations) > 0 {
		response.Error(c, apperror.NewValidation(violations))
		return
	}

	pdf, err := h.service.SalesReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-report-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
