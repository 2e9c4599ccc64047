package models

import "time"

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100)" json:"email"`
	Role      string    `gorm:"type:varchar(50)" json:"role"`
	TeamID    uint      `gorm:"not null;index" json:"team_id"`
	CreatedAt time.Time `json:"created_at"`

	Team      Team       `gorm:"foreignKey:TeamID" json:"team"`
	Vacations []Vacation `gorm:"foreignKey:EmployeeID" json:"vacations,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}
