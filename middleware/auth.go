package middleware

import (
	"net/http"
	"strings"
	"time"

	"foodexpress/config"
	"foodexpress/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token carrying the session identity.
// The token is a session handle, not an auth boundary: the demo gate
// accepts any non-empty credentials.
func GenerateToken(s *session.Session, name, email string) (string, error) {
	claims := Claims{
		SessionID: s.ID,
		Name:      name,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// SessionRequired validates the token and injects the live session
// into context
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		s, ok := session.Default.Get(claims.SessionID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found — sign in again"})
			c.Abort()
			return
		}
		c.Set("session", s)
		c.Next()
	}
}

// GetSession extracts the caller's session from context
func GetSession(c *gin.Context) *session.Session {
	val, _ := c.Get("session")
	return val.(*session.Session)
}
