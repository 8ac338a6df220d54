package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"travel-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pooled connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Tour{},
		&models.CarBooking{},
		&models.TourBooking{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCar(t *testing.T, db *gorm.DB, name, status string, dailyPrice int64) models.Car {
	t.Helper()
	car := models.Car{
		Name:              name,
		Type:              "Sedan",
		PassengerCapacity: 4,
		DailyPrice:        decimal.NewFromInt(dailyPrice),
		Status:            status,
	}
	if err := db.Create(&car).Error; err != nil {
		t.Fatalf("seed car %q: %v", name, err)
	}
	return car
}

func seedTour(t *testing.T, db *gorm.DB, name, status string, pricePerPerson int64) models.Tour {
	t.Helper()
	tour := models.Tour{
		Name:           name,
		PlacesVisited:  datatypes.NewJSONSlice([]string{"Braga Street", "Asia Afrika"}),
		DurationHours:  6,
		PricePerPerson: decimal.NewFromInt(pricePerPerson),
		Status:         status,
	}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("seed tour %q: %v", name, err)
	}
	return tour
}

func TestAvailableCarsFiltersOutUnavailable(t *testing.T) {
	db := newTestDB(t)
	seedCar(t, db, "Toyota Vios", models.StatusAvailable, 300000)
	seedCar(t, db, "Honda Jazz", models.StatusUnavailable, 350000)
	seedCar(t, db, "Suzuki Ertiga", models.StatusAvailable, 400000)

	cars, err := NewCatalogService(db).AvailableCars()
	if err != nil {
		t.Fatalf("AvailableCars: %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 available cars, got %d", len(cars))
	}
	for _, car := range cars {
		if !car.Available() {
			t.Fatalf("unavailable car %q leaked into the listing", car.Name)
		}
	}
}

func TestAvailableToursFiltersOutUnavailable(t *testing.T) {
	db := newTestDB(t)
	seedTour(t, db, "Bandung City Highlights", models.StatusAvailable, 150000)
	seedTour(t, db, "Tea Plantation Tour", models.StatusUnavailable, 200000)

	tours, err := NewCatalogService(db).AvailableTours()
	if err != nil {
		t.Fatalf("AvailableTours: %v", err)
	}
	if len(tours) != 1 || tours[0].Name != "Bandung City Highlights" {
		t.Fatalf("expected only the available tour, got %v", tours)
	}
}

func TestFeaturedCarsSkipUnavailable(t *testing.T) {
	db := newTestDB(t)
	seedCar(t, db, "Honda Jazz", models.StatusUnavailable, 350000)
	for i := 0; i < 4; i++ {
		seedCar(t, db, fmt.Sprintf("Toyota Vios %d", i+1), models.StatusAvailable, 300000)
	}

	cars, err := NewCatalogService(db).FeaturedCars()
	if err != nil {
		t.Fatalf("FeaturedCars: %v", err)
	}
	if len(cars) != 3 {
		t.Fatalf("expected 3 featured cars, got %d", len(cars))
	}
	for _, car := range cars {
		if !car.Available() {
			t.Fatalf("unavailable car %q made it into the featured set", car.Name)
		}
	}
}

func TestRecentBookingsKeepFiveNewestPerUser(t *testing.T) {
	db := newTestDB(t)
	car := seedCar(t, db, "Toyota Vios", models.StatusAvailable, 300000)
	tour := seedTour(t, db, "Bandung City Highlights", models.StatusAvailable, 150000)

	base := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		b := models.CarBooking{
			UserID:        1,
			CarID:         car.ID,
			ReferenceCode: fmt.Sprintf("CAR-DASH%04d", i),
			StartDate:     base,
			EndDate:       base,
			TotalDays:     1,
			TotalPrice:    car.DailyPrice,
			CustomerName:  "Budi Santoso",
			CustomerPhone: "+62-812-3456-7890",
			CustomerEmail: "budi@example.com",
			Status:        models.BookingStatusPending,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("seed car booking %d: %v", i, err)
		}
	}
	for i := 0; i < 6; i++ {
		b := models.TourBooking{
			UserID:         1,
			TourID:         tour.ID,
			ReferenceCode:  fmt.Sprintf("TOUR-DASH%04d", i),
			TourDate:       base,
			TourTime:       "09:30",
			NumberOfPeople: 2,
			TotalPrice:     tour.PricePerPerson.Mul(decimal.NewFromInt(2)),
			CustomerName:   "Budi Santoso",
			CustomerPhone:  "+62-812-3456-7890",
			CustomerEmail:  "budi@example.com",
			Status:         models.BookingStatusPending,
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("seed tour booking %d: %v", i, err)
		}
	}
	// A newer booking owned by someone else must not leak in.
	other := models.CarBooking{
		UserID:        2,
		CarID:         car.ID,
		ReferenceCode: "CAR-OTHER001",
		StartDate:     base,
		EndDate:       base,
		TotalDays:     1,
		TotalPrice:    car.DailyPrice,
		CustomerName:  "Siti Rahma",
		CustomerPhone: "+62-813-0000-0000",
		CustomerEmail: "siti@example.com",
		Status:        models.BookingStatusPending,
		CreatedAt:     base.Add(100 * time.Hour),
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other user's booking: %v", err)
	}

	carBookings, tourBookings, err := NewDashboardService(db).RecentBookings(1)
	if err != nil {
		t.Fatalf("RecentBookings: %v", err)
	}

	if len(carBookings) != 5 {
		t.Fatalf("expected 5 car bookings, got %d", len(carBookings))
	}
	if carBookings[0].ReferenceCode != "CAR-DASH0006" {
		t.Fatalf("expected the newest booking first, got %s", carBookings[0].ReferenceCode)
	}
	for i := range carBookings {
		if carBookings[i].UserID != 1 {
			t.Fatalf("booking %s belongs to user %d", carBookings[i].ReferenceCode, carBookings[i].UserID)
		}
		if i > 0 && carBookings[i].CreatedAt.After(carBookings[i-1].CreatedAt) {
			t.Fatalf("bookings out of order: %s is newer than %s",
				carBookings[i].ReferenceCode, carBookings[i-1].ReferenceCode)
		}
	}
	if carBookings[0].Car.ID != car.ID {
		t.Fatalf("expected the car to be preloaded, got %+v", carBookings[0].Car)
	}

	if len(tourBookings) != 5 {
		t.Fatalf("expected 5 tour bookings, got %d", len(tourBookings))
	}
	if tourBookings[0].ReferenceCode != "TOUR-DASH0005" {
		t.Fatalf("expected the newest tour booking first, got %s", tourBookings[0].ReferenceCode)
	}
	if tourBookings[0].Tour.ID != tour.ID {
		t.Fatalf("expected the tour to be preloaded, got %+v", tourBookings[0].Tour)
	}
}

func TestCreateCarBookingRejectsUnavailableCar(t *testing.T) {
	db := newTestDB(t)
	car := seedCar(t, db, "Honda Jazz", models.StatusUnavailable, 350000)

	req := validCarRequest()
	req.CarID = car.ID
	booking, fieldErrs, err := NewBookingService(db).CreateCarBooking(1, req)
	if err != nil {
		t.Fatalf("CreateCarBooking: %v", err)
	}
	if booking != nil {
		t.Fatalf("expected no booking, got %+v", booking)
	}
	if fieldErrs["car_id"] != msgCarUnavailable {
		t.Fatalf("expected %q, got %v", msgCarUnavailable, fieldErrs)
	}

	var count int64
	if err := db.Model(&models.CarBooking{}).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected submission persisted %d rows", count)
	}
}

func TestCreateCarBookingRejectsUnknownCar(t *testing.T) {
	db := newTestDB(t)

	req := validCarRequest()
	req.CarID = 999
	_, fieldErrs, err := NewBookingService(db).CreateCarBooking(1, req)
	if err != nil {
		t.Fatalf("CreateCarBooking: %v", err)
	}
	if fieldErrs["car_id"] != msgCarUnavailable {
		t.Fatalf("expected %q, got %v", msgCarUnavailable, fieldErrs)
	}
}

func TestCreateTourBookingRejectsUnavailableTour(t *testing.T) {
	db := newTestDB(t)
	tour := seedTour(t, db, "Tea Plantation Tour", models.StatusUnavailable, 200000)

	req := validTourRequest()
	req.TourID = tour.ID
	booking, fieldErrs, err := NewBookingService(db).CreateTourBooking(1, req)
	if err != nil {
		t.Fatalf("CreateTourBooking: %v", err)
	}
	if booking != nil {
		t.Fatalf("expected no booking, got %+v", booking)
	}
	if fieldErrs["tour_id"] != msgTourUnavailable {
		t.Fatalf("expected %q, got %v", msgTourUnavailable, fieldErrs)
	}

	var count int64
	if err := db.Model(&models.TourBooking{}).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected submission persisted %d rows", count)
	}
}

func TestCreateCarBookingPersistsPendingRow(t *testing.T) {
	db := newTestDB(t)
	car := seedCar(t, db, "Toyota Vios", models.StatusAvailable, 300000)

	req := validCarRequest()
	req.CarID = car.ID
	booking, fieldErrs, err := NewBookingService(db).CreateCarBooking(7, req)
	if err != nil {
		t.Fatalf("CreateCarBooking: %v", err)
	}
	if fieldErrs != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}

	if booking.TotalDays != 3 {
		t.Fatalf("expected 3 rental days, got %d", booking.TotalDays)
	}
	if !booking.TotalPrice.Equal(decimal.NewFromInt(900000)) {
		t.Fatalf("expected total 900000, got %s", booking.TotalPrice)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", booking.Status)
	}
	if !strings.HasPrefix(booking.ReferenceCode, "CAR-") {
		t.Fatalf("unexpected reference code %q", booking.ReferenceCode)
	}

	var stored models.CarBooking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("load stored booking: %v", err)
	}
	if stored.UserID != 7 || stored.CarID != car.ID {
		t.Fatalf("stored booking has wrong owner or car: %+v", stored)
	}
}
