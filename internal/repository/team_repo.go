package repository

import (
	"errors"
	"holiday-planner/internal/models"

	"gorm.io/gorm"
)

type TeamRepository interface {
	Create(team *models.Team) error
	GetAll() ([]models.Team, error)
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
}

type GormTeamRepository struct {
	db *gorm.DB
}

func NewGormTeamRepository(db *gorm.DB) (TeamRepository, error) {
	if err := db.AutoMigrate(&models.Team{}); err != nil {
		return nil, err
	}
	return &GormTeamRepository{db: db}, nil
}

func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

func (r *GormTeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("id").Find(&teams).Error
	return teams, err
}

func (r *GormTeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *GormTeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.Where("name = ?", name).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

func (r *GormTeamRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Team{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
