package service

import (
	"fmt"
	"strings"

	"holiday-planner/internal/models"
	"holiday-planner/internal/repository"

	"github.com/sirupsen/logrus"
)

type TeamService struct {
	teamRepo     repository.TeamRepository
	employeeRepo repository.EmployeeRepository
	vacationRepo repository.VacationRepository
	logger       *logrus.Logger
}

func NewTeamService(
	teamRepo repository.TeamRepository,
	employeeRepo repository.EmployeeRepository,
	vacationRepo repository.VacationRepository,
	logger *logrus.Logger,
) *TeamService {
	if logger == nil {
		logger = logrus.New()
	}
	return &TeamService{
		teamRepo:     teamRepo,
		employeeRepo: employeeRepo,
		vacationRepo: vacationRepo,
		logger:       logger,
	}
}

func (s *TeamService) CreateTeam(name, description string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.teamRepo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("checking team name: %w", err)
	}
	if existing != nil {
		return nil, ErrTeamNameTaken
	}

	team := &models.Team{
		Name:        name,
		Description: description,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	s.logger.Infof("Created team %q (ID %d)", team.Name, team.ID)
	return team, nil
}

func (s *TeamService) GetTeams() ([]models.Team, error) {
	return s.teamRepo.GetAll()
}

func (s *TeamService) GetTeam(id uint) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

func (s *TeamService) UpdateTeam(id uint, name, description *string) (*models.Team, error) {
	team, err := s.GetTeam(id)
	if err != nil {
		return nil, err
	}

	if name != nil && strings.TrimSpace(*name) != "" {
		trimmed := strings.TrimSpace(*name)
		if trimmed != team.Name {
			existing, err := s.teamRepo.GetByName(trimmed)
			if err != nil {
				return nil, fmt.Errorf("checking team name: %w", err)
			}
			if existing != nil {
				return nil, ErrTeamNameTaken
			}
		}
		team.Name = trimmed
	}
	if description != nil {
		team.Description = *description
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("updating team: %w", err)
	}
	return team, nil
}

// DeleteTeam removes the team together with its employees and their vacations.
func (s *TeamService) DeleteTeam(id uint) error {
	if _, err := s.GetTeam(id); err != nil {
		return err
	}

	if err := s.vacationRepo.DeleteByTeamID(id); err != nil {
		return fmt.Errorf("deleting team vacations: %w", err)
	}
	if err := s.employeeRepo.DeleteByTeamID(id); err != nil {
		return fmt.Errorf("deleting team employees: %w", err)
	}
	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}

	s.logger.Infof("Deleted team ID %d", id)
	return nil
}
