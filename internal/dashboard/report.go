package dashboard

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
)

// buildSalesPDF renders the sales rows into a simple A4 summary table.
func buildSalesPDF(from, to time.Time, sales []SalesRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sales Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SALES REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s - %s", from.Format("2006-01-02"), to.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 8, "Order", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Customer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	var grandTotal float64
	for _, row := range sales {
		pdf.CellFormat(35, 7, row.Number, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, truncate(row.CustomerName, 34), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, row.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", row.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, row.CreatedAt.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.Ln(7)

		if row.Status != "cancelled" {
			grandTotal += row.Total
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Orders: %d    Revenue (excl. cancelled): %.2f", len(sales), grandTotal))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperror.Internal(fmt.Errorf("render sales report: %w", err))
	}
	return buf.Bytes(), nil
}

// truncate shortens s to at most max characters. It counts runes, not
// bytes, so multi-byte names are not cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
