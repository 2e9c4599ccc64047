package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"holiday-planner/internal/export"
	"holiday-planner/internal/quadrant"
)

func (h *Handler) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	grid, title, ok := h.exportGrid(w, r)
	if !ok {
		return
	}

	data, err := export.Excel(grid, title)
	if err != nil {
		h.logger.WithError(err).Error("excel export failed")
		h.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="holidays.xlsx"`)
	w.Write(data)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	grid, title, ok := h.exportGrid(w, r)
	if !ok {
		return
	}

	data, err := export.PDF(grid, title)
	if err != nil {
		h.logger.WithError(err).Error("pdf export failed")
		h.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="holidays.pdf"`)
	w.Write(data)
}

// exportGrid builds the quadrant grid for a team and window taken from the
// query string. It writes the error response itself when ok is false.
func (h *Handler) exportGrid(w http.ResponseWriter, r *http.Request) (*quadrant.Grid, string, bool) {
	if !requireMethod(w, r, http.MethodGet) {
		return nil, "", false
	}

	query := r.URL.Query()
	teamID, err := strconv.ParseUint(query.Get("team_id"), 10, 32)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid team_id")
		return nil, "", false
	}

	window := quadrant.ResolvePeriod(query.Get("period"), h.baseYear)
	if raw := query.Get("start_date"); raw != "" {
		start, err := parseISODate(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid start_date")
			return nil, "", false
		}
		end, err := parseISODate(query.Get("end_date"))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid end_date")
			return nil, "", false
		}
		if end.Before(start) {
			h.writeError(w, http.StatusBadRequest, "end_date must not be before start_date")
			return nil, "", false
		}
		window = quadrant.DateWindow{Start: start, End: end}
	}

	team, err := h.teams.GetTeam(uint(teamID))
	if err != nil {
		h.writeServiceError(w, err)
		return nil, "", false
	}

	members, err := h.employees.ListEmployees(uint(teamID))
	if err != nil {
		h.writeServiceError(w, err)
		return nil, "", false
	}

	days, err := h.vacations.QueryDays(uint(teamID), window.Start, window.End)
	if err != nil {
		h.writeServiceError(w, err)
		return nil, "", false
	}

	employees := make([]quadrant.Employee, 0, len(members))
	for _, m := range members {
		employees = append(employees, quadrant.Employee{ID: m.ID, Name: m.Name, Role: m.Role})
	}
	records := make([]quadrant.AbsenceRecord, 0, len(days))
	for _, d := range days {
		records = append(records, quadrant.AbsenceRecord{
			EmployeeID: d.EmployeeID,
			Date:       d.Date,
			Type:       d.Type,
		})
	}

	grid := quadrant.BuildGrid(employees, window.Days(), quadrant.NewAbsenceIndex(records))
	title := fmt.Sprintf("%s %s to %s",
		team.Name,
		window.Start.Format(quadrant.ISODate),
		window.End.Format(quadrant.ISODate),
	)
	return grid, title, true
}
