package models

import "time"

type Barbershop struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null;index" json:"email"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
