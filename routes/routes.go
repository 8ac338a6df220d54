package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	hc *controllers.HomeController,
	cc *controllers.CarController,
	tc *controllers.TourController,
	bc *controllers.BookingController,
	dc *controllers.DashboardController,
	ac *controllers.AuthController,
	users *services.UserService,
	jwtSecret string,
	adminToken string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Public catalog
	r.GET("/", hc.GetHome)
	r.GET("/cars", cc.ListCars)
	r.GET("/cars/:id", cc.GetCar)
	r.GET("/tours", tc.ListTours)
	r.GET("/tours/:id", tc.GetTour)

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}

	// Booking flows require a signed-in user.
	booking := r.Group("/", middleware.RequireAuth(jwtSecret))
	{
		booking.GET("/book-car", bc.NewCarBookingForm)
		booking.POST("/book-car", bc.CreateCarBooking)
		booking.GET("/book-tour", bc.NewTourBookingForm)
		booking.POST("/book-tour", bc.CreateTourBooking)
	}

	r.GET("/dashboard",
		middleware.RequireAuth(jwtSecret),
		middleware.RequireVerified(users),
		dc.GetDashboard,
	)

	admin := r.Group("/admin", middleware.AdminAuth(adminToken))
	{
		admin.POST("/cars", controllers.CreateCar)
		admin.POST("/tours", controllers.CreateTour)
		admin.PATCH("/cars/:id/status", controllers.UpdateCarStatus)
		admin.PATCH("/tours/:id/status", controllers.UpdateTourStatus)
	}

	return r
}
