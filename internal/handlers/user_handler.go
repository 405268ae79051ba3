package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUsers returns every user document.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.FindAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by its document ID.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("id", id.Hex()).Msg("failed to fetch user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// DebugAllUsers dumps a summary of every user to the server log and returns
// a static acknowledgment. Diagnostic only; passwords are stored hashed so
// nothing secret is printable here.
func (h *Handler) DebugAllUsers(c *gin.Context) {
	users, err := h.Users.FindAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to dump users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	log.Info().Int("count", len(users)).Msg("all users in DB")
	for i, user := range users {
		log.Info().
			Int("index", i+1).
			Str("phone", user.Phone).
			Str("role", user.Role).
			Msg("user")
	}
	c.String(http.StatusOK, "All users printed in terminal")
}
