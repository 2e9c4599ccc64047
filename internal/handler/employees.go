package handler

import (
	"net/http"
	"strconv"

	"holiday-planner/internal/models"
)

type employeeResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TeamID   uint   `json:"team_id"`
	TeamName string `json:"team_name"`
}

func toEmployeeResponse(e *models.Employee) employeeResponse {
	return employeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role,
		TeamID:   e.TeamID,
		TeamName: e.Team.Name,
	}
}

func (h *Handler) handleEmployees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var teamID uint
		if raw := r.URL.Query().Get("team_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				h.writeError(w, http.StatusBadRequest, "invalid team_id")
				return
			}
			teamID = uint(parsed)
		}
		employees, err := h.employees.ListEmployees(teamID)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		out := make([]employeeResponse, 0, len(employees))
		for i := range employees {
			out = append(out, toEmployeeResponse(&employees[i]))
		}
		h.writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var req struct {
			Name   string `json:"name"`
			Role   string `json:"role"`
			Email  string `json:"email"`
			TeamID uint   `json:"team_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		employee, err := h.employees.CreateEmployee(req.Name, req.Role, req.Email, req.TeamID)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, toEmployeeResponse(employee))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleEmployeeByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r.URL.Path, "/api/employees/")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req struct {
			Name   *string `json:"name"`
			Role   *string `json:"role"`
			Email  *string `json:"email"`
			TeamID *uint   `json:"team_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if _, err := h.employees.UpdateEmployee(id, req.Name, req.Role, req.Email, req.TeamID); err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case http.MethodDelete:
		if err := h.employees.DeleteEmployee(id); err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
