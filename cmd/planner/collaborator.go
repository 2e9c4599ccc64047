package main

import (
	"context"
	"time"

	"holiday-planner/internal/quadrant"
	"holiday-planner/pkg/api"
)

// apiCollaborator adapts the HTTP client to the controller's record store
// interface.
type apiCollaborator struct {
	client *api.Client
}

func (a *apiCollaborator) ListEmployees(ctx context.Context, teamID uint) ([]quadrant.Employee, error) {
	members, err := a.client.ListEmployees(ctx, teamID)
	if err != nil {
		return nil, err
	}
	out := make([]quadrant.Employee, 0, len(members))
	for _, m := range members {
		out = append(out, quadrant.Employee{ID: m.ID, Name: m.Name, Role: m.Role})
	}
	return out, nil
}

func (a *apiCollaborator) QueryAbsences(ctx context.Context, teamID uint, window quadrant.DateWindow) ([]quadrant.AbsenceRecord, error) {
	records, err := a.client.QueryAbsences(ctx, teamID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	out := make([]quadrant.AbsenceRecord, 0, len(records))
	for _, r := range records {
		out = append(out, quadrant.AbsenceRecord{
			EmployeeID: r.EmployeeID,
			Date:       r.Date,
			Type:       r.Type,
		})
	}
	return out, nil
}

func (a *apiCollaborator) ToggleAbsence(ctx context.Context, employeeID uint, day time.Time) error {
	return a.client.ToggleAbsence(ctx, employeeID, day)
}

func (a *apiCollaborator) InsertAbsenceRange(ctx context.Context, employeeID uint, start, end time.Time, vacationType string) error {
	return a.client.InsertAbsenceRange(ctx, employeeID, start, end, vacationType)
}
