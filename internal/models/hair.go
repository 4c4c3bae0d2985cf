package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices go out as JSON numbers, like every other numeric field
	decimal.MarshalJSONWithoutQuotes = true
}

// Hair is a haircut service offered by a barbershop.
type Hair struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	BarbershopID uint            `gorm:"index;not null" json:"barberShopId"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	PhotoURL     string          `gorm:"size:512" json:"photoUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
