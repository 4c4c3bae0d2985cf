package models

import (
	"time"

	"gorm.io/datatypes"
)

// Schedule is the parent row; Model says which child table holds its data.
type Schedule struct {
	ID           uint      `gorm:"primaryKey"`
	BarbershopID uint      `gorm:"index;not null"`
	Model        string    `gorm:"size:20;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type WeekPeriod struct {
	ID         uint           `gorm:"primaryKey"`
	ScheduleID uint           `gorm:"index;not null"`
	DayOfWeek  int            `gorm:"not null"`
	Position   int            `gorm:"not null"`
	StartTime  datatypes.Time `gorm:"not null"`
	EndTime    datatypes.Time `gorm:"not null"`
	Duration   int            `gorm:"not null"`
}

type CustomPeriod struct {
	ID         uint           `gorm:"primaryKey"`
	ScheduleID uint           `gorm:"index;not null"`
	Date       datatypes.Date `gorm:"not null"`
	Position   int            `gorm:"not null"`
	StartTime  datatypes.Time `gorm:"not null"`
	EndTime    datatypes.Time `gorm:"not null"`
	Duration   int            `gorm:"not null"`
}

type UnavailableDate struct {
	ID         uint           `gorm:"primaryKey"`
	ScheduleID uint           `gorm:"index;not null"`
	Date       datatypes.Date `gorm:"not null"`
}
