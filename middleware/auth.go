package middleware

import (
	"net/http"
	"strings"

	"hotel-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret returns the signing key shared with the auth controller.
func JWTSecret() []byte {
	return []byte(utils.EnvOrDefault("JWT_SECRET", "hotel-admin-dev-secret"))
}

// RequireAuth rejects requests without a valid Bearer token and exposes the
// authenticated user's id and rol on the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token requerido"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token inválido o expirado"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(float64); ok {
				c.Set("userID", uint(id))
			}
			if rol, ok := claims["rol"].(string); ok {
				c.Set("userRol", rol)
			}
		}
		c.Next()
	}
}
