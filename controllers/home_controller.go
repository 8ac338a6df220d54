package controllers

import (
	"log"
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	Catalog *services.CatalogService
}

func NewHomeController(catalog *services.CatalogService) *HomeController {
	return &HomeController{Catalog: catalog}
}

// GetHome returns the landing-page data: the top three available cars and
// tours.
func (ctrl *HomeController) GetHome(c *gin.Context) {
	cars, err := ctrl.Catalog.FeaturedCars()
	if err != nil {
		log.Printf("GetHome: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load featured cars")
		return
	}

	tours, err := ctrl.Catalog.FeaturedTours()
	if err != nil {
		log.Printf("GetHome: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load featured tours")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"featured_cars":  cars,
		"featured_tours": tours,
	})
}
