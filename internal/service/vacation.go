package service

import (
	"fmt"
	"time"

	"holiday-planner/internal/models"
	"holiday-planner/internal/repository"

	"github.com/sirupsen/logrus"
)

const isoDate = "2006-01-02"

// Notifier receives a short human-readable message after a vacation mutation.
type Notifier interface {
	Notify(message string)
}

type VacationService struct {
	vacationRepo repository.VacationRepository
	employeeRepo repository.EmployeeRepository
	notifier     Notifier
	logger       *logrus.Logger
}

func NewVacationService(
	vacationRepo repository.VacationRepository,
	employeeRepo repository.EmployeeRepository,
	notifier Notifier,
	logger *logrus.Logger,
) *VacationService {
	if logger == nil {
		logger = logrus.New()
	}
	return &VacationService{
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// AbsenceDay is one employee-day of absence on the wire. Periods are expanded
// into these before leaving the server; clients never see raw periods.
type AbsenceDay struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	VacationID uint   `json:"vacation_id"`
}

// QueryDays expands every vacation period of the team overlapping the window
// into per-day records, clipped to the window.
func (s *VacationService) QueryDays(teamID uint, startDate, endDate time.Time) ([]AbsenceDay, error) {
	startDate = normalizeDay(startDate)
	endDate = normalizeDay(endDate)

	var (
		vacations []models.Vacation
		err       error
	)
	if teamID == 0 {
		vacations, err = s.vacationRepo.GetByWindow(startDate, endDate)
	} else {
		vacations, err = s.vacationRepo.GetByTeamAndWindow(teamID, startDate, endDate)
	}
	if err != nil {
		return nil, fmt.Errorf("querying vacations: %w", err)
	}

	days := []AbsenceDay{}
	for _, v := range vacations {
		for day := v.StartDate; !day.After(v.EndDate); day = day.AddDate(0, 0, 1) {
			if day.Before(startDate) || day.After(endDate) {
				continue
			}
			days = append(days, AbsenceDay{
				EmployeeID: v.EmployeeID,
				Date:       day.Format(isoDate),
				Type:       v.Type,
				VacationID: v.ID,
			})
		}
	}
	return days, nil
}

// Toggle flips the absence flag for exactly one employee/day. Marking an
// already-absent day removes it from its period, splitting the period into the
// remainders on either side. Returns true when the day was added, false when
// it was removed.
func (s *VacationService) Toggle(employeeID uint, day time.Time) (bool, error) {
	day = normalizeDay(day)

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return false, fmt.Errorf("checking employee: %w", err)
	}
	if employee == nil {
		return false, ErrEmployeeNotFound
	}

	covering, err := s.vacationRepo.FindCovering(employeeID, day)
	if err != nil {
		return false, fmt.Errorf("looking up covering period: %w", err)
	}

	if covering == nil {
		vacation := &models.Vacation{
			EmployeeID: employeeID,
			StartDate:  day,
			EndDate:    day,
			Type:       models.VacationTypeVacation,
		}
		if err := s.vacationRepo.Create(vacation); err != nil {
			return false, fmt.Errorf("creating vacation day: %w", err)
		}
		s.notify(fmt.Sprintf("Vacation day %s added for %s", day.Format(isoDate), employee.Name))
		return true, nil
	}

	// Remove the day from the covering period: drop the period and re-create
	// the remainders left and right of the toggled day, in one transaction so
	// a failed write cannot lose the period.
	var remainders []*models.Vacation
	if covering.StartDate.Before(day) {
		remainders = append(remainders, &models.Vacation{
			EmployeeID: employeeID,
			StartDate:  covering.StartDate,
			EndDate:    day.AddDate(0, 0, -1),
			Type:       covering.Type,
			Notes:      covering.Notes,
		})
	}
	if covering.EndDate.After(day) {
		remainders = append(remainders, &models.Vacation{
			EmployeeID: employeeID,
			StartDate:  day.AddDate(0, 0, 1),
			EndDate:    covering.EndDate,
			Type:       covering.Type,
			Notes:      covering.Notes,
		})
	}
	if err := s.vacationRepo.SplitPeriod(covering.ID, remainders); err != nil {
		return false, fmt.Errorf("splitting covering period: %w", err)
	}

	s.notify(fmt.Sprintf("Vacation day %s removed for %s", day.Format(isoDate), employee.Name))
	return false, nil
}

// AddRange records one contiguous vacation period. Overlap with an existing
// period for the same employee is rejected here, the authoritative side of
// the contract.
func (s *VacationService) AddRange(employeeID uint, startDate, endDate time.Time, vacationType, notes string) (*models.Vacation, error) {
	startDate = normalizeDay(startDate)
	endDate = normalizeDay(endDate)

	if endDate.Before(startDate) {
		return nil, ErrInvalidRange
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("checking employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	overlap, err := s.vacationRepo.CheckOverlap(employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("checking overlap: %w", err)
	}
	if overlap {
		return nil, ErrVacationOverlap
	}

	if vacationType == "" {
		vacationType = models.VacationTypeVacation
	}

	vacation := &models.Vacation{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       vacationType,
		Notes:      notes,
	}
	if err := s.vacationRepo.Create(vacation); err != nil {
		return nil, fmt.Errorf("creating vacation period: %w", err)
	}

	s.logger.Infof("Created vacation period ID %d (%s..%s) for employee %d",
		vacation.ID, startDate.Format(isoDate), endDate.Format(isoDate), employeeID)
	s.notify(fmt.Sprintf("Vacation %s..%s recorded for %s",
		startDate.Format(isoDate), endDate.Format(isoDate), employee.Name))
	return vacation, nil
}

// DeleteVacation removes one stored period outright.
func (s *VacationService) DeleteVacation(id uint) error {
	vacation, err := s.vacationRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("looking up vacation: %w", err)
	}
	if vacation == nil {
		return ErrVacationNotFound
	}
	if err := s.vacationRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting vacation: %w", err)
	}
	s.notify(fmt.Sprintf("Vacation %s..%s removed",
		vacation.StartDate.Format(isoDate), vacation.EndDate.Format(isoDate)))
	return nil
}

// GetEmployeeVacations lists the stored periods for one employee.
func (s *VacationService) GetEmployeeVacations(employeeID uint) ([]models.Vacation, error) {
	return s.vacationRepo.GetByEmployeeID(employeeID)
}

func (s *VacationService) notify(message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(message)
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
