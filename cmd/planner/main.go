package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"holiday-planner/internal/config"
	"holiday-planner/internal/models"
	"holiday-planner/internal/quadrant"
	"holiday-planner/pkg/api"

	"github.com/sirupsen/logrus"
)

func main() {
	teamID := flag.Uint("team", 0, "team ID to display")
	period := flag.String("period", "year", "display window: christmas, summer or year")
	startDate := flag.String("start", "", "custom window start (YYYY-MM-DD, overrides -period with -end)")
	endDate := flag.String("end", "", "custom window end (YYYY-MM-DD)")
	toggle := flag.String("toggle", "", "toggle one cell, format EMPLOYEE_ID:YYYY-MM-DD")
	insert := flag.String("range", "", "insert a range, format EMPLOYEE_ID:START:END[:TYPE]")
	listTeams := flag.Bool("list-teams", false, "list teams and exit")
	createTeam := flag.String("create-team", "", "create a team, format NAME[:DESCRIPTION]")
	deleteTeam := flag.Uint("delete-team", 0, "delete a team and its members by ID")
	createEmployee := flag.String("create-employee", "", "add a member to -team, format NAME[:ROLE]")
	deleteEmployee := flag.Uint("delete-employee", 0, "delete an employee by ID")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.GetPlannerConfig()
	client := api.NewClient(cfg.APIBaseURL)
	ctx := context.Background()

	if *listTeams {
		teams, err := client.ListTeams(ctx)
		if err != nil {
			logger.Fatal("Failed to list teams:", err)
		}
		for _, team := range teams {
			fmt.Printf("%4d  %s\n", team.ID, team.Name)
		}
		return
	}

	// CRUD passthrough runs before the grid load, so the load that follows is
	// already the full re-fetch the mutation requires.
	if *createTeam != "" {
		name, description := splitPair(*createTeam)
		team, err := client.CreateTeam(ctx, name, description)
		if err != nil {
			logger.Fatal("Failed to create team:", err)
		}
		logger.Infof("Created team %q (ID %d)", team.Name, team.ID)
	}
	if *deleteTeam != 0 {
		if err := client.DeleteTeam(ctx, *deleteTeam); err != nil {
			logger.Fatal("Failed to delete team:", err)
		}
		logger.Infof("Deleted team ID %d", *deleteTeam)
	}
	if *createEmployee != "" {
		if *teamID == 0 {
			logger.Fatal("-create-employee needs -team")
		}
		name, role := splitPair(*createEmployee)
		employee, err := client.CreateEmployee(ctx, name, role, "", *teamID)
		if err != nil {
			logger.Fatal("Failed to create employee:", err)
		}
		logger.Infof("Created employee %q (ID %d)", employee.Name, employee.ID)
	}
	if *deleteEmployee != 0 {
		if err := client.DeleteEmployee(ctx, *deleteEmployee); err != nil {
			logger.Fatal("Failed to delete employee:", err)
		}
		logger.Infof("Deleted employee ID %d", *deleteEmployee)
	}

	if *teamID == 0 {
		if *createTeam != "" || *deleteTeam != 0 || *deleteEmployee != 0 {
			return
		}
		logger.Fatal("-team is required (use -list-teams to find IDs)")
	}

	window := quadrant.ResolvePeriod(*period, cfg.BaseYear)
	if *startDate != "" || *endDate != "" {
		start, err := time.Parse(quadrant.ISODate, *startDate)
		if err != nil {
			logger.Fatal("Invalid -start date:", err)
		}
		end, err := time.Parse(quadrant.ISODate, *endDate)
		if err != nil {
			logger.Fatal("Invalid -end date:", err)
		}
		window = quadrant.DateWindow{Start: start, End: end}
	}

	controller := quadrant.NewController(
		&apiCollaborator{client: client},
		&textRenderer{out: os.Stdout},
		&logNotifier{logger: logger},
		logger,
	)

	if err := controller.Load(ctx, *teamID, window); err != nil {
		logger.Fatal("Failed to load grid:", err)
	}

	if *toggle != "" {
		employeeID, day, err := parseToggleArg(*toggle)
		if err != nil {
			logger.Fatal("Invalid -toggle value:", err)
		}
		if err := controller.Toggle(ctx, employeeID, day); err != nil {
			logger.Fatal("Toggle failed:", err)
		}
	}

	if *insert != "" {
		employeeID, start, end, vacationType, err := parseRangeArg(*insert)
		if err != nil {
			logger.Fatal("Invalid -range value:", err)
		}
		if err := controller.InsertRange(ctx, employeeID, start, end, vacationType); err != nil {
			logger.Fatal("Range insert failed:", err)
		}
	}
}

// splitPair separates NAME[:EXTRA] argument values.
func splitPair(arg string) (string, string) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

func parseToggleArg(arg string) (uint, time.Time, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return 0, time.Time{}, fmt.Errorf("want EMPLOYEE_ID:YYYY-MM-DD, got %q", arg)
	}
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("bad employee ID %q: %w", parts[0], err)
	}
	day, err := time.Parse(quadrant.ISODate, parts[1])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("bad date %q: %w", parts[1], err)
	}
	return uint(id), day, nil
}

func parseRangeArg(arg string) (uint, time.Time, time.Time, string, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, time.Time{}, time.Time{}, "", fmt.Errorf("want EMPLOYEE_ID:START:END[:TYPE], got %q", arg)
	}
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, time.Time{}, time.Time{}, "", fmt.Errorf("bad employee ID %q: %w", parts[0], err)
	}
	start, err := time.Parse(quadrant.ISODate, parts[1])
	if err != nil {
		return 0, time.Time{}, time.Time{}, "", fmt.Errorf("bad start date %q: %w", parts[1], err)
	}
	end, err := time.Parse(quadrant.ISODate, parts[2])
	if err != nil {
		return 0, time.Time{}, time.Time{}, "", fmt.Errorf("bad end date %q: %w", parts[2], err)
	}
	vacationType := models.VacationTypeVacation
	if len(parts) == 4 && parts[3] != "" {
		vacationType = parts[3]
	}
	return uint(id), start, end, vacationType, nil
}
