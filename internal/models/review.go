package models

import "time"

type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BarbershopID uint      `gorm:"index;not null" json:"barberShopId"`
	Rating       float64   `gorm:"not null" json:"rating"`
	Comment      *string   `gorm:"size:1000" json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
