package controllers

import (
	"log"
	"net/http"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	carBookingCreatedMsg  = "Car booking created successfully! We will contact you soon to confirm your booking."
	tourBookingCreatedMsg = "Tour booking created successfully! We will contact you soon to confirm your booking."
)

type BookingController struct {
	BookingSvc *services.BookingService
	Catalog    *services.CatalogService
}

func NewBookingController(bookingSvc *services.BookingService, catalog *services.CatalogService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, Catalog: catalog}
}

// NewCarBookingForm returns the data the car booking form needs: the cars
// currently open for rental.
func (ctrl *BookingController) NewCarBookingForm(c *gin.Context) {
	cars, err := ctrl.Catalog.AvailableCars()
	if err != nil {
		log.Printf("NewCarBookingForm: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cars")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cars": cars})
}

func (ctrl *BookingController) CreateCarBooking(c *gin.Context) {
	var req services.CarBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	booking, fieldErrs, err := ctrl.BookingSvc.CreateCarBooking(middleware.UserID(c), req)
	if err != nil {
		log.Printf("CreateCarBooking: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if fieldErrs != nil {
		utils.JSONValidationError(c, fieldErrs)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": carBookingCreatedMsg,
		"data":    booking,
	})
}

// NewTourBookingForm returns the tours currently open for booking.
func (ctrl *BookingController) NewTourBookingForm(c *gin.Context) {
	tours, err := ctrl.Catalog.AvailableTours()
	if err != nil {
		log.Printf("NewTourBookingForm: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tours")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"tours": tours})
}

func (ctrl *BookingController) CreateTourBooking(c *gin.Context) {
	var req services.TourBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	booking, fieldErrs, err := ctrl.BookingSvc.CreateTourBooking(middleware.UserID(c), req)
	if err != nil {
		log.Printf("CreateTourBooking: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if fieldErrs != nil {
		utils.JSONValidationError(c, fieldErrs)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": tourBookingCreatedMsg,
		"data":    booking,
	})
}
