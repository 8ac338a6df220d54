package services

import (
	"errors"
	"fmt"

	"travel-backend/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a catalog id does not exist.
var ErrNotFound = errors.New("not_found")

const featuredCount = 3

// CatalogService answers read-only queries over the car and tour catalog.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) AvailableCars() ([]models.Car, error) {
	var cars []models.Car
	if err := s.DB.
		Where("status = ?", models.StatusAvailable).
		Order("id").
		Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to list available cars: %w", err)
	}
	if cars == nil {
		cars = []models.Car{}
	}
	return cars, nil
}

func (s *CatalogService) AvailableTours() ([]models.Tour, error) {
	var tours []models.Tour
	if err := s.DB.
		Where("status = ?", models.StatusAvailable).
		Order("id").
		Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to list available tours: %w", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

func (s *CatalogService) FeaturedCars() ([]models.Car, error) {
	var cars []models.Car
	if err := s.DB.
		Where("status = ?", models.StatusAvailable).
		Order("id").
		Limit(featuredCount).
		Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured cars: %w", err)
	}
	if cars == nil {
		cars = []models.Car{}
	}
	return cars, nil
}

func (s *CatalogService) FeaturedTours() ([]models.Tour, error) {
	var tours []models.Tour
	if err := s.DB.
		Where("status = ?", models.StatusAvailable).
		Order("id").
		Limit(featuredCount).
		Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured tours: %w", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

func (s *CatalogService) CarByID(id uint) (*models.Car, error) {
	var car models.Car
	if err := s.DB.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load car %d: %w", id, err)
	}
	return &car, nil
}

func (s *CatalogService) TourByID(id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load tour %d: %w", id, err)
	}
	return &tour, nil
}
