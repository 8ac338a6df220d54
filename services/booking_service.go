package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService validates booking submissions and writes booking rows.
// Each create is a single independent insert; there is no conflict
// detection between overlapping bookings.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateCarBooking validates the request against the catalog, computes the
// rental totals and inserts one pending booking owned by userID. A non-nil
// FieldErrors means the submission was rejected and nothing was persisted.
func (s *BookingService) CreateCarBooking(userID uint, req CarBookingRequest) (*models.CarBooking, FieldErrors, error) {
	fieldErrs := validateCarBookingFields(req)

	var car models.Car
	if req.CarID != 0 {
		err := s.DB.First(&car, req.CarID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			fieldErrs.add("car_id", msgCarUnavailable)
		case err != nil:
			return nil, nil, fmt.Errorf("failed to look up car %d: %w", req.CarID, err)
		case !car.Available():
			fieldErrs.add("car_id", msgCarUnavailable)
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	// Dates parsed once more after validation guaranteed the layout.
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	totalDays := RentalDays(start, end)
	booking := &models.CarBooking{
		UserID:        userID,
		CarID:         car.ID,
		ReferenceCode: newReferenceCode("CAR"),
		StartDate:     start,
		EndDate:       end,
		TotalDays:     totalDays,
		TotalPrice:    CarRentalPrice(totalDays, car.DailyPrice),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Status:        models.BookingStatusPending,
	}

	if err := s.DB.Create(booking).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create car booking: %w", err)
	}

	booking.Car = car
	return booking, nil, nil
}

// CreateTourBooking is the tour counterpart of CreateCarBooking.
func (s *BookingService) CreateTourBooking(userID uint, req TourBookingRequest) (*models.TourBooking, FieldErrors, error) {
	fieldErrs := validateTourBookingFields(req)

	var tour models.Tour
	if req.TourID != 0 {
		err := s.DB.First(&tour, req.TourID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			fieldErrs.add("tour_id", msgTourUnavailable)
		case err != nil:
			return nil, nil, fmt.Errorf("failed to look up tour %d: %w", req.TourID, err)
		case !tour.Available():
			fieldErrs.add("tour_id", msgTourUnavailable)
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	tourDate, _ := time.Parse(dateLayout, req.TourDate)

	booking := &models.TourBooking{
		UserID:         userID,
		TourID:         tour.ID,
		ReferenceCode:  newReferenceCode("TOUR"),
		TourDate:       tourDate,
		TourTime:       req.TourTime,
		NumberOfPeople: *req.NumberOfPeople,
		TotalPrice:     TourPrice(*req.NumberOfPeople, tour.PricePerPerson),
		CustomerName:   strings.TrimSpace(req.CustomerName),
		CustomerPhone:  strings.TrimSpace(req.CustomerPhone),
		CustomerEmail:  strings.TrimSpace(req.CustomerEmail),
		Status:         models.BookingStatusPending,
	}

	if err := s.DB.Create(booking).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create tour booking: %w", err)
	}

	booking.Tour = tour
	return booking, nil, nil
}

// newReferenceCode builds a short human-quotable code like "CAR-9F2A61B4".
func newReferenceCode(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", prefix, id[:8])
}
