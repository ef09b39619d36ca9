package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hotel-admin-backend/config"
	"hotel-admin-backend/middleware"
	"hotel-admin-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerPayload struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a console user and signs them in immediately, mirroring
// the register screen's redirect to the dashboard.
func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Nombre == "" || payload.Apellido == "" || payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "nombre, apellido, email y password son obligatorios"})
		return
	}
	if len(payload.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "el password debe tener al menos 6 caracteres"})
		return
	}
	if payload.Rol != models.RolAdmin {
		payload.Rol = models.RolUser
	}

	var existing models.User
	if err := config.DB.Where("email = ?", payload.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "ya existe un usuario con ese email"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "error interno del servidor"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "no se pudo procesar el password"})
		return
	}

	user := models.User{
		Nombre:   payload.Nombre,
		Apellido: payload.Apellido,
		Email:    payload.Email,
		Password: string(hash),
		Rol:      payload.Rol,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "no se pudo crear el usuario"})
		return
	}

	respondWithToken(c, user)
}

// Login validates credentials and returns {token, user}.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email y password son obligatorios"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "credenciales inválidas"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "credenciales inválidas"})
		return
	}

	respondWithToken(c, user)
}

func respondWithToken(c *gin.Context, user models.User) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"rol":     user.Rol,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(middleware.JWTSecret())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "no se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":       user.ID,
			"nombre":   user.Nombre,
			"apellido": user.Apellido,
			"email":    user.Email,
			"rol":      user.Rol,
		},
	})
}
