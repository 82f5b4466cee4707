package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"esporte-social/internal/repositories"
	"esporte-social/internal/teams"
)

// UserHandler serves the dashboard and profile updates.
type UserHandler struct {
	users repositories.UserRepository
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Dashboard returns the caller's profile decorated with team colors.
func (h *UserHandler) Dashboard(c *gin.Context) {
	userID := c.GetInt64("userID")

	user, err := h.users.UserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível carregar o painel"})
		return
	}

	team := teams.FormatTeamName(user.Team())
	resp := gin.H{
		"user":          user,
		"favorite_team": team,
		"team_colors":   teams.Colors(team),
		"has_location":  user.HasLocation(),
	}
	if user.EstablishmentName.Valid {
		resp["establishment_name"] = user.EstablishmentName.String
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateLocation stores the caller's current coordinates.
func (h *UserHandler) UpdateLocation(c *gin.Context) {
	var req struct {
		Latitude  *float64 `json:"latitude" binding:"required"`
		Longitude *float64 `json:"longitude" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordenadas inválidas"})
		return
	}

	userID := c.GetInt64("userID")
	if err := h.users.UpdateLocation(c.Request.Context(), userID, *req.Latitude, *req.Longitude); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível salvar a localização"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "localização atualizada"})
}
