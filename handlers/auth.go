package handlers

import (
	"net/http"

	"foodexpress/middleware"
	"foodexpress/models"
	"foodexpress/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// fallbackName is used when signing in without a display name.
const fallbackName = "User"

// Register signs up and signs in at once — the demo gate accepts any
// non-empty credentials
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	startSession(c, req.Name, req.Email, req.Password, http.StatusCreated, "Account created successfully")
}

// Login signs in. Nothing is verified beyond the fields being present.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	startSession(c, fallbackName, req.Email, req.Password, http.StatusOK, "Login successful")
}

// startSession creates the per-user storefront session and issues its
// token. The password is hashed before the plaintext is dropped; the
// hash is never checked again.
func startSession(c *gin.Context, name, email, password string, status int, message string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	s := session.Default.Create()
	s.Login(user)

	token, err := middleware.GenerateToken(s, user.Name, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(status, gin.H{
		"message": message,
		"token":   token,
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
		"snapshot": s.Snapshot(),
	})
}

// GetProfile returns the signed-in user as seen by the session
func GetProfile(c *gin.Context) {
	snap := middleware.GetSession(c).Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name": snap.UserName,
		},
		"page": snap.Page,
	})
}
