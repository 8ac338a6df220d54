package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TourBooking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"index;column:user_id" json:"user_id"`
	TourID        uint   `gorm:"index;column:tour_id" json:"tour_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	TourDate       time.Time       `gorm:"column:tour_date;type:date;index" json:"tour_date"`
	TourTime       string          `gorm:"column:tour_time;size:5" json:"tour_time"`
	NumberOfPeople int             `gorm:"column:number_of_people" json:"number_of_people"`
	TotalPrice     decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`

	CustomerName  string `gorm:"column:customer_name;size:255" json:"customer_name"`
	CustomerPhone string `gorm:"column:customer_phone;size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"column:customer_email;size:255" json:"customer_email"`

	Status    string    `gorm:"size:20;default:pending;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Tour Tour `gorm:"foreignKey:TourID;references:ID" json:"tour,omitempty"`
}
