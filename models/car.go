package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusAvailable   = "available"
	StatusUnavailable = "unavailable"
)

// CarTypes are the rental fleet categories the catalog accepts.
var CarTypes = []string{"Sedan", "SUV", "MPV", "Hatchback", "Minivan"}

type Car struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"size:255" json:"name"`
	Type              string          `gorm:"size:50;index" json:"type"`
	PassengerCapacity int             `gorm:"column:passenger_capacity" json:"passenger_capacity"`
	DailyPrice        decimal.Decimal `gorm:"column:daily_price;type:decimal(10,2)" json:"daily_price"`
	Description       string          `gorm:"type:text" json:"description"`
	ImageURL          string          `gorm:"column:image_url;size:255" json:"image_url"`
	Status            string          `gorm:"size:20;default:available;index" json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (c Car) Available() bool {
	return c.Status == StatusAvailable
}

func IsValidCarType(t string) bool {
	for _, known := range CarTypes {
		if t == known {
			return true
		}
	}
	return false
}
