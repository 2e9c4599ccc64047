package repository

import (
	"errors"
	"time"

	"holiday-planner/internal/models"

	"gorm.io/gorm"
)

type VacationRepository interface {
	Create(vacation *models.Vacation) error
	GetByID(id uint) (*models.Vacation, error)
	GetByEmployeeID(employeeID uint) ([]models.Vacation, error)
	GetByWindow(startDate, endDate time.Time) ([]models.Vacation, error)
	GetByTeamAndWindow(teamID uint, startDate, endDate time.Time) ([]models.Vacation, error)
	FindCovering(employeeID uint, day time.Time) (*models.Vacation, error)
	CheckOverlap(employeeID uint, startDate, endDate time.Time) (bool, error)
	SplitPeriod(id uint, remainders []*models.Vacation) error
	Delete(id uint) error
	DeleteByEmployeeID(employeeID uint) error
	DeleteByTeamID(teamID uint) error
}

type GormVacationRepository struct {
	db *gorm.DB
}

func NewGormVacationRepository(db *gorm.DB) (VacationRepository, error) {
	if err := db.AutoMigrate(&models.Vacation{}); err != nil {
		return nil, err
	}
	return &GormVacationRepository{db: db}, nil
}

func (r *GormVacationRepository) Create(vacation *models.Vacation) error {
	return r.db.Create(vacation).Error
}

func (r *GormVacationRepository) GetByID(id uint) (*models.Vacation, error) {
	var vacation models.Vacation
	err := r.db.First(&vacation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vacation, nil
}

func (r *GormVacationRepository) GetByEmployeeID(employeeID uint) ([]models.Vacation, error) {
	var vacations []models.Vacation
	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date").
		Find(&vacations).Error
	return vacations, err
}

func (r *GormVacationRepository) GetByWindow(startDate, endDate time.Time) ([]models.Vacation, error) {
	var vacations []models.Vacation
	err := r.db.Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Order("start_date").
		Find(&vacations).Error
	return vacations, err
}

func (r *GormVacationRepository) GetByTeamAndWindow(teamID uint, startDate, endDate time.Time) ([]models.Vacation, error) {
	var vacations []models.Vacation
	err := r.db.Joins("JOIN employees ON employees.id = vacations.employee_id").
		Where("employees.team_id = ?", teamID).
		Where("vacations.start_date <= ? AND vacations.end_date >= ?", endDate, startDate).
		Order("vacations.start_date").
		Find(&vacations).Error
	return vacations, err
}

func (r *GormVacationRepository) FindCovering(employeeID uint, day time.Time) (*models.Vacation, error) {
	var vacation models.Vacation
	err := r.db.Where("employee_id = ? AND start_date <= ? AND end_date >= ?",
		employeeID, day, day).
		First(&vacation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vacation, nil
}

func (r *GormVacationRepository) CheckOverlap(employeeID uint, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vacation{}).
		Where("employee_id = ? AND start_date <= ? AND end_date >= ?",
			employeeID, endDate, startDate).
		Count(&count).Error
	return count > 0, err
}

// SplitPeriod atomically replaces one period with its remainders. Either the
// period is gone and every remainder exists, or nothing changed.
func (r *GormVacationRepository) SplitPeriod(id uint, remainders []*models.Vacation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Vacation{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		for _, remainder := range remainders {
			if err := tx.Create(remainder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormVacationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Vacation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormVacationRepository) DeleteByEmployeeID(employeeID uint) error {
	return r.db.Where("employee_id = ?", employeeID).Delete(&models.Vacation{}).Error
}

func (r *GormVacationRepository) DeleteByTeamID(teamID uint) error {
	return r.db.Where("employee_id IN (?)",
		r.db.Model(&models.Employee{}).Select("id").Where("team_id = ?", teamID)).
		Delete(&models.Vacation{}).Error
}
