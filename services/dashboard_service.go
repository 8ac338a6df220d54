package services

import (
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

const dashboardBookingLimit = 5

// DashboardService reads the booking history shown on a user's dashboard.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// RecentBookings returns up to five of the user's most recent car bookings
// and five most recent tour bookings, newest first, each joined with the
// booked car or tour.
func (s *DashboardService) RecentBookings(userID uint) ([]models.CarBooking, []models.TourBooking, error) {
	var carBookings []models.CarBooking
	if err := s.DB.
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(dashboardBookingLimit).
		Find(&carBookings).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load car bookings for user %d: %w", userID, err)
	}

	var tourBookings []models.TourBooking
	if err := s.DB.
		Preload("Tour").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(dashboardBookingLimit).
		Find(&tourBookings).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load tour bookings for user %d: %w", userID, err)
	}

	if carBookings == nil {
		carBookings = []models.CarBooking{}
	}
	if tourBookings == nil {
		tourBookings = []models.TourBooking{}
	}
	return carBookings, tourBookings, nil
}
