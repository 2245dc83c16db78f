package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
)

// Column widths in mm for the A4 portrait table.
const (
	colItemWidth   = 90.0
	colPersonWidth = 46.0
	rowHeight      = 9.0
)

// BuildPDF renders the fridge roadmap as a two-page A4 document: the diet
// table first (grams converted to cooked weight), then supplements on
// their own page. Mirrors the printed sheet the frontend used to export.
func BuildPDF(cat *catalog.Service) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeader := func(label string) {
		pdf.SetFont("Arial", "B", 13)
		pdf.SetFillColor(15, 23, 42)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(colItemWidth, rowHeight, tr(label), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colPersonWidth, rowHeight, "AXEL", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colPersonWidth, rowHeight, "PRISCA", "1", 1, "C", true, 0, "")
	}

	writeSection := func(section string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(241, 245, 249)
		pdf.SetTextColor(30, 41, 59)
		width := colItemWidth + 2*colPersonWidth
		pdf.CellFormat(width, rowHeight, tr(section), "1", 1, "C", true, 0, "")
	}

	writeRow := func(row catalog.Row, shade bool) {
		pdf.SetTextColor(30, 41, 59)
		pdf.SetFillColor(225, 225, 225)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(colItemWidth, rowHeight, tr(row.Item), "1", 0, "L", shade, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(colPersonWidth, rowHeight, tr(row.AxelSpec), "1", 0, "C", shade, 0, "")
		pdf.CellFormat(colPersonWidth, rowHeight, tr(row.PriscaSpec), "1", 1, "C", shade, 0, "")
	}

	writePage := func(headerLabel, category string, cooked bool) {
		pdf.AddPage()
		writeHeader(headerLabel)

		sections, bySection := cat.Grouped(category)
		line := 0
		for _, section := range sections {
			writeSection(section)
			for _, row := range bySection[section] {
				if cooked {
					row = CookedRow(row)
				}
				writeRow(row, line%2 == 1)
				line++
			}
		}
	}

	writePage("ALIMENT", catalog.CategoryDiet, true)
	writePage("PRODUIT", catalog.CategorySupplement, false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
