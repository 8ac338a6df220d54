package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "middleware-test-secret"

func setupVerifiedRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	r.GET("/dashboard",
		RequireAuth(testJWTSecret),
		RequireVerified(services.NewUserService(db)),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		},
	)
	return r, db
}

func getDashboardAs(t *testing.T, r *gin.Engine, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	token, _, err := utils.GenerateAccessToken(testJWTSecret, userID, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireVerifiedAllowsVerifiedUser(t *testing.T) {
	r, db := setupVerifiedRouter(t)
	now := time.Now()
	user := models.User{Name: "Budi", Email: "budi@example.com", Password: "x", EmailVerifiedAt: &now}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if w := getDashboardAs(t, r, user.ID); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireVerifiedRejectsUnverifiedUser(t *testing.T) {
	r, db := setupVerifiedRouter(t)
	user := models.User{Name: "Siti", Email: "siti@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if w := getDashboardAs(t, r, user.ID); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireVerifiedUnknownUserIsUnauthorized(t *testing.T) {
	r, _ := setupVerifiedRouter(t)

	if w := getDashboardAs(t, r, 42); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body)
	}
}

func TestRequireVerifiedStorageFailureIsServerError(t *testing.T) {
	r, db := setupVerifiedRouter(t)
	now := time.Now()
	user := models.User{Name: "Budi", Email: "budi@example.com", Password: "x", EmailVerifiedAt: &now}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	// A broken store must not masquerade as a missing account.
	if w := getDashboardAs(t, r, user.ID); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body)
	}
}
