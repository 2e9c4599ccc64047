package export

import (
	"bytes"
	"testing"

	"holiday-planner/internal/quadrant"
)

func testGrid() *quadrant.Grid {
	window := quadrant.ResolvePeriod("christmas", 2025)
	employees := []quadrant.Employee{
		{ID: 1, Name: "Jesús", Role: "Team Lead"},
		{ID: 2, Name: "Félix", Role: "Developer"},
	}
	index := quadrant.NewAbsenceIndex([]quadrant.AbsenceRecord{
		{EmployeeID: 1, Date: "2025-12-24", Type: "vacation"},
		{EmployeeID: 2, Date: "2025-12-29", Type: "sick"},
	})
	return quadrant.BuildGrid(employees, window.Days(), index)
}

func TestExcelProducesWorkbook(t *testing.T) {
	data, err := Excel(testGrid(), "Alfa 2025-12-22 to 2026-01-07")
	if err != nil {
		t.Fatalf("Excel: %v", err)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("output does not look like a zip archive (%d bytes)", len(data))
	}
}

func TestPDFProducesDocument(t *testing.T) {
	data, err := PDF(testGrid(), "Alfa 2025-12-22 to 2026-01-07")
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header (%d bytes)", len(data))
	}
}

func TestExportsHandleEmptyGrid(t *testing.T) {
	window := quadrant.DateWindow{
		Start: quadrant.DayOf(quadrant.ResolvePeriod("year", 2025).Start),
		End:   quadrant.DayOf(quadrant.ResolvePeriod("year", 2025).Start),
	}
	grid := quadrant.BuildGrid(nil, window.Days(), quadrant.NewAbsenceIndex(nil))

	if _, err := Excel(grid, "empty"); err != nil {
		t.Errorf("Excel on an employee-less grid: %v", err)
	}
	if _, err := PDF(grid, "empty"); err != nil {
		t.Errorf("PDF on an employee-less grid: %v", err)
	}
}
