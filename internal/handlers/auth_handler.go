package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kaamkarwalo/booking-api/internal/models"
	"github.com/kaamkarwalo/booking-api/internal/repository"
	"github.com/kaamkarwalo/booking-api/internal/utils"
)

type RegisterUserRequest struct {
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	WorkerType string `json:"workerType"`
	City       string `json:"city"`
	District   string `json:"district"`
	State      string `json:"state"`
	Address    string `json:"address"`
	Location   string `json:"location"`
}

// RegisterUser creates a new user account. Phone uniqueness is enforced by
// the storage engine's unique index, so two concurrent registrations with the
// same phone cannot both succeed.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}

	user := models.User{
		UserID:     uuid.NewString(),
		Role:       role,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      strings.TrimSpace(req.Phone),
		WorkerType: req.WorkerType,
		Password:   hashedPassword,
		City:       req.City,
		District:   req.District,
		State:      req.State,
		Address:    req.Address,
		Location:   req.Location,
	}

	if err := h.Users.Insert(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phone already registered"})
			return
		}
		log.Error().Err(err).Str("phone", user.Phone).Msg("failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": role + " registered successfully"})
}

// Login authenticates a user by phone and password and returns the stored
// user record. The password field is never serialized.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.FindByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		log.Error().Err(err).Msg("login lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone number"})
		return
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}
