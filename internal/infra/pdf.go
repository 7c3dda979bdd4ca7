package infra

// pdf.go — movement-log report export using go-pdf/fpdf.
// Renders an A4 table of the ledger: timestamp, product, direction, quantity,
// condition bucket, reason and operator. The output file is saved to
// storagePath/movements_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

// GenerateMovementReportPDF writes the movement log (expected newest-first)
// to a PDF file and returns its absolute path. storagePath is created if
// needed.
func GenerateMovementReportPDF(movements []model.StockMovement, storagePath string, now time.Time) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("movements_%s.pdf", now.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Stock Movement Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, now.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	cols := []struct {
		w     float64
		title string
		align string
	}{
		{0.16, "Date", "L"},
		{0.28, "Product", "L"},
		{0.08, "Type", "C"},
		{0.08, "Qty", "R"},
		{0.12, "Condition", "C"},
		{0.14, "Reason", "L"},
		{0.14, "By", "L"},
	}
	pdf.SetFont("Helvetica", "B", 8)
	for _, c := range cols {
		pdf.CellFormat(contentW*c.w, 6, c.title, "B", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, mv := range movements {
		name := mv.ProductName
		if len(name) > 34 {
			name = name[:33] + "…"
		}
		qty := fmt.Sprintf("+%d", mv.Quantity)
		if mv.Type == model.MovementOut {
			qty = fmt.Sprintf("-%d", mv.Quantity)
		}
		cells := []string{
			mv.CreatedAt.Format("01/02 15:04"),
			name,
			mv.Type,
			qty,
			mv.Condition,
			mv.Reason,
			mv.CreatedBy,
		}
		for i, c := range cols {
			pdf.CellFormat(contentW*c.w, 5, cells[i], "", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(movements) == 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "No movements recorded.", "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
