// Package export renders a built quadrant grid to spreadsheet and PDF
// documents: two fixed leading columns, one column per day, weekend and
// vacation shading, and a per-employee totals column.
package export

import (
	"fmt"

	"holiday-planner/internal/quadrant"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Vacations"

// Palette matching the on-screen quadrant.
const (
	colorHeader   = "4472C4"
	colorWeekend  = "E7E6E6"
	colorVacation = "92D050"
	colorSick     = "FFC000"
)

func Excel(grid *quadrant.Grid, title string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorHeader}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{colorWeekend}, Pattern: 1},
		Border: thin,
	})
	if err != nil {
		return nil, err
	}
	vacationStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorVacation}, Pattern: 1},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}
	plainStyle, err := f.NewStyle(&excelize.Style{Border: thin})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return nil, err
	}

	setCell := func(col, row int, value interface{}, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if value != nil {
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
		return f.SetCellStyle(sheetName, cell, cell, style)
	}

	// Header row: name, role, one column per day, totals.
	if err := setCell(1, 1, "Name", headerStyle); err != nil {
		return nil, err
	}
	if err := setCell(2, 1, "Role", headerStyle); err != nil {
		return nil, err
	}
	for i, day := range grid.Days {
		if err := setCell(i+3, 1, day.Format("02-Jan"), headerStyle); err != nil {
			return nil, err
		}
	}
	totalCol := len(grid.Days) + 3
	if err := setCell(totalCol, 1, "Total Days", headerStyle); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 15); err != nil {
		return nil, err
	}
	firstDay, err := excelize.ColumnNumberToName(3)
	if err != nil {
		return nil, err
	}
	lastDay, err := excelize.ColumnNumberToName(totalCol)
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, firstDay, lastDay, 8); err != nil {
		return nil, err
	}

	for r, row := range grid.Rows {
		excelRow := r + 2
		if err := setCell(1, excelRow, row.Employee.Name, plainStyle); err != nil {
			return nil, err
		}
		if err := setCell(2, excelRow, row.Employee.Role, plainStyle); err != nil {
			return nil, err
		}
		for i, cell := range row.Cells {
			switch {
			case cell.Absent:
				if err := setCell(i+3, excelRow, "X", vacationStyle); err != nil {
					return nil, err
				}
			case cell.Weekend:
				if err := setCell(i+3, excelRow, nil, weekendStyle); err != nil {
					return nil, err
				}
			default:
				if err := setCell(i+3, excelRow, nil, plainStyle); err != nil {
					return nil, err
				}
			}
		}
		if err := setCell(totalCol, excelRow, row.TotalAbsent, totalStyle); err != nil {
			return nil, err
		}
	}

	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
			return nil, fmt.Errorf("setting workbook title: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
