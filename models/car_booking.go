package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type CarBooking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"index;column:user_id" json:"user_id"`
	CarID         uint   `gorm:"index;column:car_id" json:"car_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	StartDate  time.Time       `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate    time.Time       `gorm:"column:end_date;type:date" json:"end_date"`
	TotalDays  int             `gorm:"column:total_days" json:"total_days"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`

	// Contact details as submitted on the booking form, kept independent
	// of the owning account's profile.
	CustomerName  string `gorm:"column:customer_name;size:255" json:"customer_name"`
	CustomerPhone string `gorm:"column:customer_phone;size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"column:customer_email;size:255" json:"customer_email"`

	Status    string    `gorm:"size:20;default:pending;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Car  Car  `gorm:"foreignKey:CarID;references:ID" json:"car,omitempty"`
}
