// Package handler exposes the holiday planner HTTP API: team and employee
// CRUD, per-day absence queries, single-day toggles, range insertion, and
// quadrant export.
package handler

import (
	"net/http"

	"holiday-planner/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	teams     *service.TeamService
	employees *service.EmployeeService
	vacations *service.VacationService
	baseYear  int
	logger    *logrus.Logger
}

func NewHandler(
	teams *service.TeamService,
	employees *service.EmployeeService,
	vacations *service.VacationService,
	baseYear int,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		teams:     teams,
		employees: employees,
		vacations: vacations,
		baseYear:  baseYear,
		logger:    logger,
	}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/teams", h.handleTeams)
	mux.HandleFunc("/api/teams/", h.handleTeamByID)
	mux.HandleFunc("/api/employees", h.handleEmployees)
	mux.HandleFunc("/api/employees/", h.handleEmployeeByID)
	mux.HandleFunc("/api/vacations", h.handleVacations)
	mux.HandleFunc("/api/vacations/", h.handleVacationByID)
	mux.HandleFunc("/api/vacations/toggle", h.handleToggle)
	mux.HandleFunc("/api/vacations/range", h.handleRange)
	mux.HandleFunc("/api/export/xlsx", h.handleExportExcel)
	mux.HandleFunc("/api/export/pdf", h.handleExportPDF)

	return h.withLogging(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(recorder, r)

		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
		}).Info("request handled")
	})
}
