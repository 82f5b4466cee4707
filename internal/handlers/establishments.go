package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"esporte-social/internal/cache"
	"esporte-social/internal/clients"
	"esporte-social/internal/models"
	"esporte-social/internal/repositories"
)

// EstablishmentHandler serves the nearby bars listing.
type EstablishmentHandler struct {
	users  repositories.UserRepository
	places clients.PlacesAPI
	cache  *cache.Cache
}

// NewEstablishmentHandler constructs an EstablishmentHandler.
func NewEstablishmentHandler(users repositories.UserRepository, places clients.PlacesAPI, cache *cache.Cache) *EstablishmentHandler {
	return &EstablishmentHandler{users: users, places: places, cache: cache}
}

// NearbyEstablishments lists bars around the caller's stored location.
// A caller without a stored location gets an empty list, and upstream
// failures degrade to an empty list with an error note instead of a 5xx.
func (h *EstablishmentHandler) NearbyEstablishments(c *gin.Context) {
	userID := c.GetInt64("userID")

	user, err := h.users.UserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível carregar o usuário"})
		return
	}
	if !user.HasLocation() {
		c.JSON(http.StatusOK, gin.H{
			"establishments": []models.Establishment{},
			"message":        "compartilhe sua localização para ver bares próximos",
		})
		return
	}

	lat := user.Latitude.Float64
	lng := user.Longitude.Float64
	key := fmt.Sprintf("places:%.4f:%.4f", lat, lng)
	if cached, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, gin.H{"establishments": cached})
		return
	}

	establishments, err := h.places.NearbyBars(c.Request.Context(), lat, lng)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"establishments": []models.Establishment{},
			"error":          "não foi possível buscar bares próximos",
		})
		return
	}

	h.cache.Set(key, establishments)
	c.JSON(http.StatusOK, gin.H{"establishments": establishments})
}
