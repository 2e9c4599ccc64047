package models

import "time"

type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Employees []Employee `gorm:"foreignKey:TeamID" json:"employees,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}
