package controllers

import (
	"net/http"

	"travel-backend/config"
	"travel-backend/models"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// carPayload and tourPayload carry only the writable catalog fields, so a
// request body cannot smuggle in an id or timestamps.
type carPayload struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	PassengerCapacity int             `json:"passenger_capacity"`
	DailyPrice        decimal.Decimal `json:"daily_price"`
	Description       string          `json:"description"`
	ImageURL          string          `json:"image_url"`
	Status            string          `json:"status"`
}

type tourPayload struct {
	Name           string          `json:"name"`
	PlacesVisited  []string        `json:"places_visited"`
	DurationHours  int             `json:"duration_hours"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	Status         string          `json:"status"`
}

func validStatus(s string) bool {
	return s == models.StatusAvailable || s == models.StatusUnavailable
}

// CreateCar (POST /admin/cars) adds a vehicle to the rental catalog.
func CreateCar(c *gin.Context) {
	var payload carPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid car payload: "+err.Error())
		return
	}

	if payload.Name == "" || !models.IsValidCarType(payload.Type) || payload.PassengerCapacity <= 0 || payload.DailyPrice.IsNegative() {
		utils.JSONError(c, http.StatusBadRequest, "name, a known car type, positive capacity and a non-negative daily price are required")
		return
	}
	if payload.Status == "" {
		payload.Status = models.StatusAvailable
	} else if !validStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be available or unavailable")
		return
	}

	car := models.Car{
		Name:              payload.Name,
		Type:              payload.Type,
		PassengerCapacity: payload.PassengerCapacity,
		DailyPrice:        payload.DailyPrice,
		Description:       payload.Description,
		ImageURL:          payload.ImageURL,
		Status:            payload.Status,
	}
	if err := config.DB.Create(&car).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create car")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, car)
}

// CreateTour (POST /admin/tours) adds a guided tour to the catalog.
func CreateTour(c *gin.Context) {
	var payload tourPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour payload: "+err.Error())
		return
	}

	if payload.Name == "" || len(payload.PlacesVisited) == 0 || payload.DurationHours <= 0 || payload.PricePerPerson.IsNegative() {
		utils.JSONError(c, http.StatusBadRequest, "name, places visited, positive duration and a non-negative price are required")
		return
	}
	if payload.Status == "" {
		payload.Status = models.StatusAvailable
	} else if !validStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be available or unavailable")
		return
	}

	tour := models.Tour{
		Name:           payload.Name,
		PlacesVisited:  datatypes.NewJSONSlice(payload.PlacesVisited),
		DurationHours:  payload.DurationHours,
		PricePerPerson: payload.PricePerPerson,
		Description:    payload.Description,
		ImageURL:       payload.ImageURL,
		Status:         payload.Status,
	}
	if err := config.DB.Create(&tour).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create tour")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tour)
}

// UpdateCarStatus (PATCH /admin/cars/:id/status) flips a car between
// available and unavailable.
func UpdateCarStatus(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || !validStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be available or unavailable")
		return
	}

	res := config.DB.Model(&models.Car{}).Where("id = ?", c.Param("id")).Update("status", payload.Status)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update car status")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Car not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": payload.Status})
}

// UpdateTourStatus (PATCH /admin/tours/:id/status).
func UpdateTourStatus(c *gin.Context) {
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || !validStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "status must be available or unavailable")
		return
	}

	res := config.DB.Model(&models.Tour{}).Where("id = ?", c.Param("id")).Update("status", payload.Status)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update tour status")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Tour not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": payload.Status})
}
