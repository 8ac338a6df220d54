package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

const accessTokenTTL = 24 * time.Hour

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Users     *services.UserService
	JWTSecret string
}

func NewAuthController(users *services.UserService, jwtSecret string) *AuthController {
	return &AuthController{Users: users, JWTSecret: jwtSecret}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email required")
		return
	}
	if len(payload.Password) < 8 {
		utils.JSONError(c, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	user, err := ctrl.Users.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("Register: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	ctrl.respondWithToken(c, http.StatusCreated, user.ID, user.Name, user.Email)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	user, err := ctrl.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("Login: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign in")
		return
	}

	ctrl.respondWithToken(c, http.StatusOK, user.ID, user.Name, user.Email)
}

func (ctrl *AuthController) respondWithToken(c *gin.Context, status int, id uint, name, email string) {
	token, expiresAt, err := utils.GenerateAccessToken(ctrl.JWTSecret, id, accessTokenTTL)
	if err != nil {
		log.Printf("respondWithToken: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(status, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user": gin.H{
			"id":    id,
			"name":  name,
			"email": email,
		},
	})
}
