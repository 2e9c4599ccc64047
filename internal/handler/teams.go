package handler

import (
	"net/http"

	"holiday-planner/internal/models"
)

type teamResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toTeamResponse(t *models.Team) teamResponse {
	return teamResponse{ID: t.ID, Name: t.Name, Description: t.Description}
}

func (h *Handler) handleTeams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		teams, err := h.teams.GetTeams()
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		out := make([]teamResponse, 0, len(teams))
		for i := range teams {
			out = append(out, toTeamResponse(&teams[i]))
		}
		h.writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		team, err := h.teams.CreateTeam(req.Name, req.Description)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, toTeamResponse(team))

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleTeamByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r.URL.Path, "/api/teams/")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid team id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if _, err := h.teams.UpdateTeam(id, req.Name, req.Description); err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case http.MethodDelete:
		if err := h.teams.DeleteTeam(id); err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
