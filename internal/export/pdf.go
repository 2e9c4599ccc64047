package export

import (
	"bytes"
	"fmt"

	"holiday-planner/internal/quadrant"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders the quadrant as a landscape A4 table with the same shading as
// the spreadsheet export.
func PDF(grid *quadrant.Grid, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0x44, 0x72, 0xC4)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	if len(grid.Days) > 0 {
		subtitle := fmt.Sprintf("Period: %s - %s",
			grid.Days[0].Format("02/01/2006"),
			grid.Days[len(grid.Days)-1].Format("02/01/2006"))
		pdf.CellFormat(0, 8, subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	const (
		nameW  = 35.0
		roleW  = 25.0
		totalW = 14.0
		rowH   = 6.0
	)
	usable := pageW - left - right - nameW - roleW - totalW
	dayW := usable / float64(len(grid.Days))
	if dayW > 10 {
		dayW = 10
	}

	// Header row.
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(0x44, 0x72, 0xC4)
	pdf.SetTextColor(0xFF, 0xFF, 0xFF)
	pdf.CellFormat(nameW, rowH, "Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(roleW, rowH, "Role", "1", 0, "C", true, 0, "")
	for _, day := range grid.Days {
		pdf.CellFormat(dayW, rowH, day.Format("02/01"), "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(totalW, rowH, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range grid.Rows {
		pdf.CellFormat(nameW, rowH, tr(row.Employee.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(roleW, rowH, tr(row.Employee.Role), "1", 0, "L", false, 0, "")
		for _, cell := range row.Cells {
			text := ""
			fill := false
			switch {
			case cell.Absent:
				pdf.SetFillColor(0x92, 0xD0, 0x50)
				text = "X"
				fill = true
			case cell.Weekend:
				pdf.SetFillColor(0xE7, 0xE6, 0xE6)
				fill = true
			}
			pdf.CellFormat(dayW, rowH, text, "1", 0, "C", fill, 0, "")
		}
		pdf.SetFillColor(0xF2, 0xF2, 0xF2)
		pdf.CellFormat(totalW, rowH, fmt.Sprintf("%d", row.TotalAbsent), "1", 1, "C", true, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0x80, 0x80, 0x80)
	pdf.CellFormat(0, 5, "Legend: X = vacation day | grey = weekend", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
