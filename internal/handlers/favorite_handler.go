package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Clewless/Weather-History-Viewer-sub000/internal/database"
	"github.com/Clewless/Weather-History-Viewer-sub000/internal/models"
)

// CreateFavoriteRequest represents the request payload for saving a favorite location
type CreateFavoriteRequest struct {
	Name        string   `json:"name" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	CountryCode string   `json:"country_code"`
}

// GetFavorites handles GET /api/favorites
// Returns the authenticated user's favorite locations, newest first
func GetFavorites(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var favorites []models.FavoriteLocation
	result := database.GetDB().Where("user_id = ?", userID).Order("created_at desc").Find(&favorites)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch favorites",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
		"count":     len(favorites),
	})
}

// CreateFavorite handles POST /api/favorites
// Saves a location for the authenticated user
func CreateFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Pointer fields so binding distinguishes a missing coordinate from 0
	if *req.Latitude < -90 || *req.Latitude > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be between -90 and 90"})
		return
	}
	if *req.Longitude < -180 || *req.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be between -180 and 180"})
		return
	}

	favorite := models.FavoriteLocation{
		ID:          fmt.Sprintf("fav-%d", time.Now().UnixNano()),
		Name:        req.Name,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		CountryCode: req.CountryCode,
		UserID:      userID,
	}

	if err := database.GetDB().Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save favorite",
		})
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// DeleteFavorite handles DELETE /api/favorites/:id
// Deletes a favorite owned by the authenticated user
func DeleteFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	favoriteID := c.Param("id")
	if favoriteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Favorite ID is required",
		})
		return
	}

	var favorite models.FavoriteLocation
	result := database.GetDB().Where("id = ? AND user_id = ?", favoriteID, userID).First(&favorite)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Favorite not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch favorite",
			})
		}
		return
	}

	if err := database.GetDB().Delete(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite deleted successfully",
		"id":      favoriteID,
	})
}
