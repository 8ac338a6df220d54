package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Tour struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`

	// Ordered itinerary; stored as a JSON text column.
	PlacesVisited datatypes.JSONSlice[string] `gorm:"column:places_visited" json:"places_visited"`

	DurationHours  int             `gorm:"column:duration_hours" json:"duration_hours"`
	PricePerPerson decimal.Decimal `gorm:"column:price_per_person;type:decimal(10,2)" json:"price_per_person"`
	Description    string          `gorm:"type:text" json:"description"`
	ImageURL       string          `gorm:"column:image_url;size:255" json:"image_url"`
	Status         string          `gorm:"size:20;default:available;index" json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (t Tour) Available() bool {
	return t.Status == StatusAvailable
}

// Places returns the itinerary as a plain slice, in visiting order.
func (t Tour) Places() []string {
	return []string(t.PlacesVisited)
}
