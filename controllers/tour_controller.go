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

type TourController struct {
	Catalog *services.CatalogService
}

func NewTourController(catalog *services.CatalogService) *TourController {
	return &TourController{Catalog: catalog}
}

func (ctrl *TourController) ListTours(c *gin.Context) {
	tours, err := ctrl.Catalog.AvailableTours()
	if err != nil {
		log.Printf("ListTours: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tours")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tours)
}

func (ctrl *TourController) GetTour(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Tour not found")
		return
	}

	tour, err := ctrl.Catalog.TourByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Tour not found")
			return
		}
		log.Printf("GetTour %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tour")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tour)
}
