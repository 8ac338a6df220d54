package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	cfg := gomysql.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := gomysql.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(envOrDefault("DB_HOST", "127.0.0.1"), envOrDefault("DB_PORT", "3306"))
	cfg.DBName = envOrDefault("DB_NAME", "travel_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Tour{},
		&models.CarBooking{},
		&models.TourBooking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase fills an empty catalog with the default fleet and tour
// itineraries and ensures a verified demo account exists.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("DEMO_USER_PASSWORD", "password")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash demo user password: %v", err)
		} else {
			now := time.Now()
			user := models.User{
				Name:            "Demo User",
				Email:           "demo@travel.local",
				Password:        string(hash),
				EmailVerifiedAt: &now,
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("warning: failed to create demo user: %v", err)
			} else {
				log.Println("Demo user seeded")
			}
		}
	}

	var carCount int64
	DB.Model(&models.Car{}).Count(&carCount)
	if carCount == 0 {
		cars := []models.Car{
			{Name: "Toyota Vios", Type: "Sedan", PassengerCapacity: 4, DailyPrice: decimal.NewFromInt(300000)},
			{Name: "Honda City", Type: "Sedan", PassengerCapacity: 4, DailyPrice: decimal.NewFromInt(350000)},
			{Name: "Toyota Fortuner", Type: "SUV", PassengerCapacity: 7, DailyPrice: decimal.NewFromInt(600000)},
			{Name: "Honda CR-V", Type: "SUV", PassengerCapacity: 7, DailyPrice: decimal.NewFromInt(650000)},
			{Name: "Toyota Avanza", Type: "MPV", PassengerCapacity: 7, DailyPrice: decimal.NewFromInt(400000)},
			{Name: "Mitsubishi Xpander", Type: "MPV", PassengerCapacity: 7, DailyPrice: decimal.NewFromInt(450000)},
			{Name: "Toyota Yaris", Type: "Hatchback", PassengerCapacity: 4, DailyPrice: decimal.NewFromInt(300000)},
			{Name: "Honda Jazz", Type: "Hatchback", PassengerCapacity: 4, DailyPrice: decimal.NewFromInt(275000)},
			{Name: "Toyota Hiace", Type: "Minivan", PassengerCapacity: 12, DailyPrice: decimal.NewFromInt(700000)},
			{Name: "Isuzu ELF", Type: "Minivan", PassengerCapacity: 12, DailyPrice: decimal.NewFromInt(650000)},
		}
		for i := range cars {
			cars[i].Status = models.StatusAvailable
			cars[i].Description = fmt.Sprintf("%s — daily rental with driver available.", cars[i].Name)
			cars[i].ImageURL = "https://via.placeholder.com/400x300?text=" + url.QueryEscape(cars[i].Type)
		}
		if err := DB.Create(&cars).Error; err != nil {
			log.Printf("warning: failed to seed cars: %v", err)
		} else {
			log.Println("Cars seeded")
		}
	}

	var tourCount int64
	DB.Model(&models.Tour{}).Count(&tourCount)
	if tourCount == 0 {
		tours := []models.Tour{
			{
				Name:           "Bandung City Highlights",
				PlacesVisited:  datatypes.NewJSONSlice([]string{"Gedung Sate", "Alun-alun Bandung", "Braga Street", "Factory Outlets"}),
				DurationHours:  6,
				PricePerPerson: decimal.NewFromInt(150000),
			},
			{
				Name:           "Tea Plantation Tour",
				PlacesVisited:  datatypes.NewJSONSlice([]string{"Ciwidey Tea Plantation", "Kawah Putih", "Patenggang Lake"}),
				DurationHours:  8,
				PricePerPerson: decimal.NewFromInt(200000),
			},
			{
				Name:           "Culinary Adventure",
				PlacesVisited:  datatypes.NewJSONSlice([]string{"Kampung Gajah", "Local Food Markets", "Traditional Restaurants"}),
				DurationHours:  5,
				PricePerPerson: decimal.NewFromInt(120000),
			},
			{
				Name:           "Mountain Adventure",
				PlacesVisited:  datatypes.NewJSONSlice([]string{"Tangkuban Parahu", "Hot Springs", "Strawberry Gardens"}),
				DurationHours:  10,
				PricePerPerson: decimal.NewFromInt(250000),
			},
			{
				Name:           "Cultural Heritage Tour",
				PlacesVisited:  datatypes.NewJSONSlice([]string{"Saung Angklung Udjo", "Geological Museum", "Traditional Markets"}),
				DurationHours:  7,
				PricePerPerson: decimal.NewFromInt(180000),
			},
		}
		for i := range tours {
			tours[i].Status = models.StatusAvailable
			tours[i].Description = fmt.Sprintf("Guided day tour: %s.", strings.Join(tours[i].Places(), ", "))
			tours[i].ImageURL = "https://via.placeholder.com/400x300?text=" + url.QueryEscape(tours[i].Name)
		}
		if err := DB.Create(&tours).Error; err != nil {
			log.Printf("warning: failed to seed tours: %v", err)
		} else {
			log.Println("Tours seeded")
		}
	}
}
