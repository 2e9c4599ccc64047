package main

import (
	"fmt"
	"io"
	"strings"

	"holiday-planner/internal/quadrant"

	"github.com/sirupsen/logrus"
)

// textRenderer prints the grid as a fixed-width table: one row per employee,
// one column per day, "X" for absence, "." for a free weekend day and a blank
// for a free weekday, with a per-row absence total.
type textRenderer struct {
	out io.Writer
}

func (r *textRenderer) RenderGrid(grid *quadrant.Grid) {
	if grid == nil || len(grid.Days) == 0 {
		fmt.Fprintln(r.out, "(empty grid)")
		return
	}

	nameWidth := len("Employee")
	for _, row := range grid.Rows {
		if len(row.Employee.Name) > nameWidth {
			nameWidth = len(row.Employee.Name)
		}
	}

	// Header: day-of-month per column, month markers on a separate line.
	var months, days strings.Builder
	lastMonth := ""
	for _, day := range grid.Days {
		month := day.Format("Jan")
		if month != lastMonth {
			months.WriteString(fmt.Sprintf("%-3s", month))
			lastMonth = month
		} else {
			months.WriteString("   ")
		}
		days.WriteString(fmt.Sprintf("%2d ", day.Day()))
	}
	fmt.Fprintf(r.out, "%-*s  %s\n", nameWidth, "", months.String())
	fmt.Fprintf(r.out, "%-*s  %s %s\n", nameWidth, "Employee", days.String(), "Total")

	for _, row := range grid.Rows {
		var cells strings.Builder
		for _, cell := range row.Cells {
			switch {
			case cell.Absent:
				cells.WriteString(" X ")
			case cell.Weekend:
				cells.WriteString(" . ")
			default:
				cells.WriteString("   ")
			}
		}
		fmt.Fprintf(r.out, "%-*s  %s %5d\n", nameWidth, row.Employee.Name, cells.String(), row.TotalAbsent)
	}
}

func (r *textRenderer) RenderError(err error) {
	fmt.Fprintf(r.out, "!! grid unavailable: %v\n", err)
}

// logNotifier routes controller acknowledgements through logrus.
type logNotifier struct {
	logger *logrus.Logger
}

func (n *logNotifier) Info(message string)  { n.logger.Info(message) }
func (n *logNotifier) Alert(message string) { n.logger.Warn(message) }
