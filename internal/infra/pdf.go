package infra

// pdf.go — Bill receipt generation using go-pdf/fpdf.
// Renders the itemized breakdown produced by the bill service:
//   - Title header
//   - Generation timestamp
//   - Line table (item, quantity, unit price, subtotal)
//   - Bold grand total

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ahmadraza103/IMS/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateBillPDF writes an itemized bill to storagePath (created if needed)
// and returns the absolute path of the generated file.
func GenerateBillPDF(bill *dto.BillResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	now := time.Now()
	fileName := fmt.Sprintf("bill_%s.pdf", now.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — thermal receipt paper size, same as the POS tickets.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Inventory Management", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Itemized Bill", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, now.Format("02/01/2006  15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Line table header ─────────────────────────────────────────────────────
	col1 := contentW * 0.40 // item name
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.22 // unit price
	col4 := contentW * 0.24 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

	// ── Line rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for _, line := range bill.Lines {
		name := line.Name
		if len(name) > 18 {
			name = name[:17] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+line.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+line.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2+col3, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+bill.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
