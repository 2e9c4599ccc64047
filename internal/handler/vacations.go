package handler

import (
	"net/http"
	"strconv"

	"holiday-planner/internal/models"
)

// handleVacations answers per-day absence queries: every vacation overlapping
// the window is expanded into one record per covered day, clipped to the window.
func (h *Handler) handleVacations(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query()
	teamID, err := strconv.ParseUint(query.Get("team_id"), 10, 32)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid team_id")
		return
	}
	start, err := parseISODate(query.Get("start_date"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := parseISODate(query.Get("end_date"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	days, err := h.vacations.QueryDays(uint(teamID), start, end)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, days)
}

func (h *Handler) handleVacationByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	id, err := idFromPath(r.URL.Path, "/api/vacations/")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid vacation id")
		return
	}
	if err := h.vacations.DeleteVacation(id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		EmployeeID uint   `json:"employee_id"`
		Date       string `json:"date"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	day, err := parseISODate(req.Date)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	added, err := h.vacations.Toggle(req.EmployeeID, day)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	status := "removed"
	if added {
		status = "added"
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": status,
		"date":   day.Format(isoDate),
	})
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		EmployeeID uint   `json:"employee_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
		Type       string `json:"type"`
		Notes      string `json:"notes"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	start, err := parseISODate(req.StartDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := parseISODate(req.EndDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}
	if req.Type == "" {
		req.Type = models.VacationTypeVacation
	}

	vacation, err := h.vacations.AddRange(req.EmployeeID, start, end, req.Type, req.Notes)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          vacation.ID,
		"employee_id": vacation.EmployeeID,
		"start_date":  vacation.StartDate.Format(isoDate),
		"end_date":    vacation.EndDate.Format(isoDate),
		"type":        vacation.Type,
	})
}
