package controllers

import (
	"log"
	"net/http"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

// GetDashboard returns the signed-in user's five most recent car and tour
// bookings, newest first.
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	carBookings, tourBookings, err := ctrl.DashboardSvc.RecentBookings(userID)
	if err != nil {
		log.Printf("GetDashboard user %d: %v", userID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"car_bookings":  carBookings,
		"tour_bookings": tourBookings,
	})
}
