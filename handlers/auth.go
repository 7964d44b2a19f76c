package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-ratings-api/auth"
	"store-ratings-api/middleware"
	"store-ratings-api/services"
)

type AuthHandler struct {
	users  *services.UserService
	tokens *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// Register creates a NORMAL_USER account. Role is never caller-chosen
// here; admins create privileged accounts through their own endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	user, err := h.users.Create(services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user":    user,
	})
}

// Login authenticates by email and password and returns a fresh token.
// The failure message never says which of the two was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(req.Email, true)
	if err != nil {
		respondError(c, services.ErrInvalidCredentials)
		return
	}
	if !auth.ComparePassword(req.Password, user.PasswordHash) {
		respondError(c, services.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	user.PasswordHash = ""
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Profile returns the authenticated caller's own record.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.users.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdatePassword changes the caller's own password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	user, err := h.users.UpdatePassword(middleware.GetUserID(c), req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully", "user": user})
}
