package repository

import (
	"errors"
	"holiday-planner/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetAll() ([]models.Employee, error)
	GetByTeamID(teamID uint) ([]models.Employee, error)
	GetByID(id uint) (*models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
	DeleteByTeamID(teamID uint) error
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) (EmployeeRepository, error) {
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		return nil, err
	}
	return &GormEmployeeRepository{db: db}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Preload("Team").Order("id").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) GetByTeamID(teamID uint) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Preload("Team").
		Where("team_id = ?", teamID).
		Order("id").
		Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("Team").First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

func (r *GormEmployeeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormEmployeeRepository) DeleteByTeamID(teamID uint) error {
	return r.db.Where("team_id = ?", teamID).Delete(&models.Employee{}).Error
}
