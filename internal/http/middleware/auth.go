package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authUserIDKey   = "auth_user_id"
	authUserTypeKey = "auth_user_type"
)

// RequireAuth verifies the Bearer token signature and places the
// claims on the context. Tokens are consumed here, never issued.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "credenciales requeridas",
			})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "sesión inválida o expirada",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "sesión inválida o expirada",
			})
			return
		}

		if id, _ := claims["id"].(string); id != "" {
			c.Set(authUserIDKey, id)
		}
		if userType, _ := claims["userType"].(string); userType != "" {
			c.Set(authUserTypeKey, userType)
		}
		c.Next()
	}
}

// RequireAdmin gates routes behind userType=admin; run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthUserType(c) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "se requiere una cuenta de administrador",
			})
			return
		}
		c.Next()
	}
}

// AuthUserID returns the authenticated user's id, "" when anonymous.
func AuthUserID(c *gin.Context) string {
	if v, ok := c.Get(authUserIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// AuthUserType returns the authenticated user's type, "" when anonymous.
func AuthUserType(c *gin.Context) string {
	if v, ok := c.Get(authUserTypeKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
