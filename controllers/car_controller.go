package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type CarController struct {
	Catalog *services.CatalogService
}

func NewCarController(catalog *services.CatalogService) *CarController {
	return &CarController{Catalog: catalog}
}

func (ctrl *CarController) ListCars(c *gin.Context) {
	cars, err := ctrl.Catalog.AvailableCars()
	if err != nil {
		log.Printf("ListCars: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cars")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cars)
}

func (ctrl *CarController) GetCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Car not found")
		return
	}

	car, err := ctrl.Catalog.CarByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Car not found")
			return
		}
		log.Printf("GetCar %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load car")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, car)
}
