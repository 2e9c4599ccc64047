package service

import (
	"fmt"
	"strings"

	"holiday-planner/internal/models"
	"holiday-planner/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	teamRepo     repository.TeamRepository
	vacationRepo repository.VacationRepository
	logger       *logrus.Logger
}

func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	teamRepo repository.TeamRepository,
	vacationRepo repository.VacationRepository,
	logger *logrus.Logger,
) *EmployeeService {
	if logger == nil {
		logger = logrus.New()
	}
	return &EmployeeService{
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
		vacationRepo: vacationRepo,
		logger:       logger,
	}
}

func (s *EmployeeService) CreateEmployee(name, role, email string, teamID uint) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("checking team: %w", err)
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	employee := &models.Employee{
		Name:   name,
		Role:   role,
		Email:  email,
		TeamID: teamID,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	s.logger.Infof("Created employee %q (ID %d) in team %q", employee.Name, employee.ID, team.Name)
	return employee, nil
}

// ListEmployees returns employees of one team, or all employees when teamID is 0.
// Row order is insertion order; the grid relies on it staying stable.
func (s *EmployeeService) ListEmployees(teamID uint) ([]models.Employee, error) {
	if teamID == 0 {
		return s.employeeRepo.GetAll()
	}
	return s.employeeRepo.GetByTeamID(teamID)
}

func (s *EmployeeService) GetEmployee(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(id uint, name, role, email *string, teamID *uint) (*models.Employee, error) {
	employee, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		employee.Name = strings.TrimSpace(*name)
	}
	if role != nil {
		employee.Role = *role
	}
	if email != nil {
		employee.Email = *email
	}
	if teamID != nil && *teamID != 0 {
		team, err := s.teamRepo.GetByID(*teamID)
		if err != nil {
			return nil, fmt.Errorf("checking team: %w", err)
		}
		if team == nil {
			return nil, ErrTeamNotFound
		}
		employee.TeamID = *teamID
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, fmt.Errorf("updating employee: %w", err)
	}
	return employee, nil
}

// DeleteEmployee removes the employee and every vacation recorded for them.
func (s *EmployeeService) DeleteEmployee(id uint) error {
	if _, err := s.GetEmployee(id); err != nil {
		return err
	}

	if err := s.vacationRepo.DeleteByEmployeeID(id); err != nil {
		return fmt.Errorf("deleting employee vacations: %w", err)
	}
	if err := s.employeeRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	s.logger.Infof("Deleted employee ID %d", id)
	return nil
}
