package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"holiday-planner/internal/repository"
	"holiday-planner/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}

	teamRepo, err := repository.NewGormTeamRepository(db)
	if err != nil {
		t.Fatalf("team repo: %v", err)
	}
	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		t.Fatalf("employee repo: %v", err)
	}
	vacationRepo, err := repository.NewGormVacationRepository(db)
	if err != nil {
		t.Fatalf("vacation repo: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	teams := service.NewTeamService(teamRepo, employeeRepo, vacationRepo, log)
	employees := service.NewEmployeeService(employeeRepo, teamRepo, vacationRepo, log)
	vacations := service.NewVacationService(vacationRepo, employeeRepo, nil, log)

	srv := httptest.NewServer(NewHandler(teams, employees, vacations, 2025, log).Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

// seedTeamWithEmployee creates one team and one member, returning their IDs.
func seedTeamWithEmployee(t *testing.T, base string) (uint, uint) {
	t.Helper()

	resp := postJSON(t, base+"/api/teams", map[string]string{"name": "Alfa"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create team: status %d", resp.StatusCode)
	}
	var team struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &team)

	resp = postJSON(t, base+"/api/employees", map[string]interface{}{
		"name": "Felix", "role": "Developer", "team_id": team.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create employee: status %d", resp.StatusCode)
	}
	var employee struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &employee)

	return team.ID, employee.ID
}

func TestTeamLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/teams", map[string]string{"name": "Alfa", "description": "default"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	decodeJSON(t, resp, &created)
	if created.Name != "Alfa" {
		t.Errorf("created name = %q", created.Name)
	}

	// Duplicate names conflict.
	resp = postJSON(t, srv.URL+"/api/teams", map[string]string{"name": "Alfa"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate create: status %d, want 409", resp.StatusCode)
	}

	listResp, err := http.Get(srv.URL + "/api/teams")
	if err != nil {
		t.Fatalf("GET teams: %v", err)
	}
	var teams []map[string]interface{}
	decodeJSON(t, listResp, &teams)
	if len(teams) != 1 {
		t.Errorf("got %d teams, want 1", len(teams))
	}

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/teams/%d", srv.URL, created.ID), nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE team: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("delete: status %d", delResp.StatusCode)
	}
}

func TestToggleEndpoint(t *testing.T) {
	srv := newTestServer(t)
	_, employeeID := seedTeamWithEmployee(t, srv.URL)

	resp := postJSON(t, srv.URL+"/api/vacations/toggle", map[string]interface{}{
		"employee_id": employeeID, "date": "2025-12-24",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle: status %d", resp.StatusCode)
	}
	var ack map[string]string
	decodeJSON(t, resp, &ack)
	if ack["status"] != "added" || ack["date"] != "2025-12-24" {
		t.Errorf("ack = %v, want added/2025-12-24", ack)
	}

	resp = postJSON(t, srv.URL+"/api/vacations/toggle", map[string]interface{}{
		"employee_id": employeeID, "date": "2025-12-24",
	})
	decodeJSON(t, resp, &ack)
	if ack["status"] != "removed" {
		t.Errorf("second toggle status = %q, want removed", ack["status"])
	}

	// Unknown employees are a 404, not a silent insert.
	resp = postJSON(t, srv.URL+"/api/vacations/toggle", map[string]interface{}{
		"employee_id": 999, "date": "2025-12-24",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown employee: status %d, want 404", resp.StatusCode)
	}
}

func TestRangeEndpointRejectsOverlap(t *testing.T) {
	srv := newTestServer(t)
	_, employeeID := seedTeamWithEmployee(t, srv.URL)

	resp := postJSON(t, srv.URL+"/api/vacations/range", map[string]interface{}{
		"employee_id": employeeID, "start_date": "2025-12-22", "end_date": "2025-12-28",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("range: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/vacations/range", map[string]interface{}{
		"employee_id": employeeID, "start_date": "2025-12-24", "end_date": "2025-12-30",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("overlapping range: status %d, want 409", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/vacations/range", map[string]interface{}{
		"employee_id": employeeID, "start_date": "2025-12-30", "end_date": "2025-12-29",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("inverted range: status %d, want 400", resp.StatusCode)
	}
}

func TestVacationDeleteEndpoint(t *testing.T) {
	srv := newTestServer(t)
	teamID, employeeID := seedTeamWithEmployee(t, srv.URL)

	resp := postJSON(t, srv.URL+"/api/vacations/range", map[string]interface{}{
		"employee_id": employeeID, "start_date": "2025-12-24", "end_date": "2025-12-26",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("range: status %d", resp.StatusCode)
	}
	var created struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &created)

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/vacations/%d", srv.URL, created.ID), nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE vacation: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("delete: status %d", delResp.StatusCode)
	}

	url := fmt.Sprintf("%s/api/vacations?team_id=%d&start_date=2025-12-22&end_date=2026-01-07", srv.URL, teamID)
	getResp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET vacations: %v", err)
	}
	var days []map[string]interface{}
	decodeJSON(t, getResp, &days)
	if len(days) != 0 {
		t.Errorf("got %d days after delete, want 0", len(days))
	}

	req, _ = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/vacations/%d", srv.URL, created.ID), nil)
	delResp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE vacation again: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNotFound {
		t.Errorf("deleting a missing vacation: status %d, want 404", delResp.StatusCode)
	}
}

func TestVacationsQueryExpandsDays(t *testing.T) {
	srv := newTestServer(t)
	teamID, employeeID := seedTeamWithEmployee(t, srv.URL)

	resp := postJSON(t, srv.URL+"/api/vacations/range", map[string]interface{}{
		"employee_id": employeeID, "start_date": "2025-12-24", "end_date": "2025-12-26", "type": "sick",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("range: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	url := fmt.Sprintf("%s/api/vacations?team_id=%d&start_date=2025-12-22&end_date=2026-01-07", srv.URL, teamID)
	getResp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET vacations: %v", err)
	}
	var days []struct {
		EmployeeID uint   `json:"employee_id"`
		Date       string `json:"date"`
		Type       string `json:"type"`
	}
	decodeJSON(t, getResp, &days)

	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}
	want := []string{"2025-12-24", "2025-12-25", "2025-12-26"}
	for i, d := range days {
		if d.Date != want[i] || d.Type != "sick" || d.EmployeeID != employeeID {
			t.Errorf("day %d = %+v, want %s/sick/%d", i, d, want[i], employeeID)
		}
	}
}

func TestVacationsQueryValidation(t *testing.T) {
	srv := newTestServer(t)

	for _, url := range []string{
		"/api/vacations",
		"/api/vacations?team_id=1",
		"/api/vacations?team_id=1&start_date=nope&end_date=2025-12-31",
	} {
		resp, err := http.Get(srv.URL + url)
		if err != nil {
			t.Fatalf("GET %s: %v", url, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s: status %d, want 400", url, resp.StatusCode)
		}
	}
}

func TestExportEndpoints(t *testing.T) {
	srv := newTestServer(t)
	teamID, employeeID := seedTeamWithEmployee(t, srv.URL)

	resp := postJSON(t, srv.URL+"/api/vacations/range", map[string]interface{}{
		"employee_id": employeeID, "start_date": "2025-12-24", "end_date": "2025-12-26",
	})
	resp.Body.Close()

	tests := []struct {
		path     string
		wantType string
	}{
		{"/api/export/xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"/api/export/pdf", "application/pdf"},
	}
	for _, tt := range tests {
		url := fmt.Sprintf("%s%s?team_id=%d&period=christmas", srv.URL, tt.path, teamID)
		getResp, err := http.Get(url)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		getResp.Body.Close()
		if getResp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status %d", tt.path, getResp.StatusCode)
		}
		if got := getResp.Header.Get("Content-Type"); got != tt.wantType {
			t.Errorf("GET %s: Content-Type = %q, want %q", tt.path, got, tt.wantType)
		}
	}
}

func TestExportRejectsInvertedWindow(t *testing.T) {
	srv := newTestServer(t)
	teamID, _ := seedTeamWithEmployee(t, srv.URL)

	for _, path := range []string{"/api/export/xlsx", "/api/export/pdf"} {
		url := fmt.Sprintf("%s%s?team_id=%d&start_date=2025-12-28&end_date=2025-12-22", srv.URL, path, teamID)
		resp, err := http.Get(url)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s with inverted dates: status %d, want 400", path, resp.StatusCode)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/teams")
	if err != nil {
		t.Fatalf("GET teams: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("responses should carry a request ID")
	}
}
