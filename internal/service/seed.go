package service

import (
	"errors"
	"fmt"
	"time"
)

type seedMember struct {
	name   string
	role   string
	ranges [][2]string // inclusive ISO start/end pairs
}

var defaultMembers = []seedMember{
	{name: "Jesús", role: "Team Lead", ranges: [][2]string{{"2025-12-22", "2026-01-07"}}},
	{name: "Adrian", role: "Developer", ranges: [][2]string{{"2025-12-22", "2026-01-07"}}},
	{name: "Felix", role: "Developer", ranges: [][2]string{
		{"2025-12-24", "2025-12-24"},
		{"2025-12-29", "2025-12-31"},
	}},
	{name: "Alan", role: "Developer"},
	{name: "Erik", role: "Developer"},
	{name: "Cesar", role: "Developer"},
}

// SeedDefaults loads the stock Alfa team with its Christmas vacation plan.
// Calling it against a database that already has the team is a no-op.
func SeedDefaults(teams *TeamService, employees *EmployeeService, vacations *VacationService) error {
	team, err := teams.CreateTeam("Alfa", "Default team")
	if errors.Is(err, ErrTeamNameTaken) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seeding team: %w", err)
	}

	for _, m := range defaultMembers {
		employee, err := employees.CreateEmployee(m.name, m.role, "", team.ID)
		if err != nil {
			return fmt.Errorf("seeding employee %s: %w", m.name, err)
		}
		for _, r := range m.ranges {
			start, err := time.Parse(isoDate, r[0])
			if err != nil {
				return fmt.Errorf("seed range start %q: %w", r[0], err)
			}
			end, err := time.Parse(isoDate, r[1])
			if err != nil {
				return fmt.Errorf("seed range end %q: %w", r[1], err)
			}
			if _, err := vacations.AddRange(employee.ID, start, end, "", ""); err != nil {
				return fmt.Errorf("seeding vacations for %s: %w", m.name, err)
			}
		}
	}
	return nil
}
