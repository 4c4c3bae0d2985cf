package models

import "time"

type Barber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BarbershopID uint      `gorm:"index;not null" json:"barberShopId"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
