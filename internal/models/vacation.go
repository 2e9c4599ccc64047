package models

import "time"

// Vacation is a contiguous absence period for one employee, both ends inclusive.
// Single absent days are stored as one-day periods.
type Vacation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Type       string    `gorm:"type:varchar(50);not null;default:'vacation'" json:"type"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee"`
}

func (Vacation) TableName() string {
	return "vacations"
}

const (
	VacationTypeVacation = "vacation"
	VacationTypeSick     = "sick"
	VacationTypePersonal = "personal"
)

// Covers reports whether the period includes the given day. Dates are stored
// normalized to midnight, the caller is expected to pass a normalized day.
func (v *Vacation) Covers(day time.Time) bool {
	return !day.Before(v.StartDate) && !day.After(v.EndDate)
}

// DayCount is the number of calendar days in the period.
func (v *Vacation) DayCount() int {
	return int(v.EndDate.Sub(v.StartDate).Hours()/24) + 1
}
