package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/routes"
	"travel-backend/services"
	"travel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue access tokens.")
	}

	adminToken := os.Getenv("ADMIN_API_TOKEN")
	if adminToken == "" {
		log.Println("⚠️  ADMIN_API_TOKEN not set; admin catalog routes are disabled")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	catalogService := services.NewCatalogService(db)
	bookingService := services.NewBookingService(db)
	dashboardService := services.NewDashboardService(db)
	userService := services.NewUserService(db)

	// Initialize controllers
	homeController := controllers.NewHomeController(catalogService)
	carController := controllers.NewCarController(catalogService)
	tourController := controllers.NewTourController(catalogService)
	bookingController := controllers.NewBookingController(bookingService, catalogService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	authController := controllers.NewAuthController(userService, jwtSecret)

	router := routes.SetupRouter(
		homeController,
		carController,
		tourController,
		bookingController,
		dashboardController,
		authController,
		userService,
		jwtSecret,
		adminToken,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
