// Package api is the HTTP client for the holiday planner collaborator
// contract. All dates cross the wire as ISO YYYY-MM-DD.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const isoDate = "2006-01-02"

type Team struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Employee struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TeamID   uint   `json:"team_id"`
	TeamName string `json:"team_name"`
}

// AbsenceRecord is one employee-day of absence. Date may carry a trailing
// time component depending on the server build; callers must tolerate it.
type AbsenceRecord struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	VacationID uint   `json:"vacation_id"`
}

// APIError is a non-2xx response. Mutations treat any APIError as a full
// rejection requiring rollback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := c.get(ctx, "/api/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ListEmployees returns the employees of one team, or of all teams when
// teamID is 0.
func (c *Client) ListEmployees(ctx context.Context, teamID uint) ([]Employee, error) {
	query := url.Values{}
	if teamID != 0 {
		query.Set("team_id", strconv.FormatUint(uint64(teamID), 10))
	}
	var employees []Employee
	if err := c.get(ctx, "/api/employees", query, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) QueryAbsences(ctx context.Context, teamID uint, startDate, endDate time.Time) ([]AbsenceRecord, error) {
	query := url.Values{}
	query.Set("team_id", strconv.FormatUint(uint64(teamID), 10))
	query.Set("start_date", startDate.Format(isoDate))
	query.Set("end_date", endDate.Format(isoDate))
	var records []AbsenceRecord
	if err := c.get(ctx, "/api/vacations", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ToggleAbsence(ctx context.Context, employeeID uint, day time.Time) error {
	body := map[string]interface{}{
		"employee_id": employeeID,
		"date":        day.Format(isoDate),
	}
	return c.post(ctx, "/api/vacations/toggle", body, nil)
}

func (c *Client) InsertAbsenceRange(ctx context.Context, employeeID uint, startDate, endDate time.Time, vacationType string) error {
	body := map[string]interface{}{
		"employee_id": employeeID,
		"start_date":  startDate.Format(isoDate),
		"end_date":    endDate.Format(isoDate),
		"type":        vacationType,
	}
	return c.post(ctx, "/api/vacations/range", body, nil)
}

func (c *Client) CreateTeam(ctx context.Context, name, description string) (*Team, error) {
	body := map[string]interface{}{"name": name, "description": description}
	var team Team
	if err := c.post(ctx, "/api/teams", body, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) DeleteTeam(ctx context.Context, id uint) error {
	return c.del(ctx, fmt.Sprintf("/api/teams/%d", id))
}

func (c *Client) CreateEmployee(ctx context.Context, name, role, email string, teamID uint) (*Employee, error) {
	body := map[string]interface{}{
		"name":    name,
		"role":    role,
		"email":   email,
		"team_id": teamID,
	}
	var employee Employee
	if err := c.post(ctx, "/api/employees", body, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id uint) error {
	return c.del(ctx, fmt.Sprintf("/api/employees/%d", id))
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Status: resp.StatusCode, Message: string(bytes.TrimSpace(message))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
