package quadrant

import "time"

// Employee is the slice of the employee record the grid needs.
type Employee struct {
	ID   uint
	Name string
	Role string
}

// GridCell is derived, never stored: weekend and absence flags for one
// employee-day.
type GridCell struct {
	Day     time.Time
	Weekend bool
	Absent  bool
}

type GridRow struct {
	Employee    Employee
	Cells       []GridCell
	TotalAbsent int
}

// Grid is the employee × day presentation table. Rows follow the employee
// list order, columns are strictly chronological.
type Grid struct {
	Days []time.Time
	Rows []GridRow
}

// BuildGrid combines an employee list, a day sequence, and an absence index
// into the presentation grid. Pure: same inputs, same grid, no I/O.
func BuildGrid(employees []Employee, days []time.Time, index *AbsenceIndex) *Grid {
	grid := &Grid{Days: days}
	for _, emp := range employees {
		row := GridRow{
			Employee: emp,
			Cells:    make([]GridCell, 0, len(days)),
		}
		for _, day := range days {
			cell := GridCell{
				Day:     day,
				Weekend: IsWeekend(day),
				Absent:  index.IsAbsent(emp.ID, day),
			}
			if cell.Absent {
				row.TotalAbsent++
			}
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// setAbsent overrides one cell's rendered absence flag. This is the
// optimistic visual flip (and its revert): it changes the projection only,
// never the absence set the grid was built from.
func (g *Grid) setAbsent(employeeID uint, day time.Time, absent bool) {
	day = DayOf(day)
	for i := range g.Rows {
		row := &g.Rows[i]
		if row.Employee.ID != employeeID {
			continue
		}
		for j := range row.Cells {
			cell := &row.Cells[j]
			if !cell.Day.Equal(day) {
				continue
			}
			if cell.Absent != absent {
				cell.Absent = absent
				if absent {
					row.TotalAbsent++
				} else {
					row.TotalAbsent--
				}
			}
			return
		}
		return
	}
}

// Cell looks up the rendered cell for an employee/day, or nil when either is
// not part of the grid.
func (g *Grid) Cell(employeeID uint, day time.Time) *GridCell {
	day = DayOf(day)
	for i := range g.Rows {
		if g.Rows[i].Employee.ID != employeeID {
			continue
		}
		for j := range g.Rows[i].Cells {
			if g.Rows[i].Cells[j].Day.Equal(day) {
				return &g.Rows[i].Cells[j]
			}
		}
		return nil
	}
	return nil
}
