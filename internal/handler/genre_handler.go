package handler

import (
	"net/http"

	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type GenreInput struct {
	Name string `json:"name" binding:"required"`
}

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateGenre godoc
// @Summary      Create a new genre
// @Description  Creates a genre with a unique name.
// @Tags         admin-genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GenreInput true "Genre Info"
// @Success      201  {object}  GenreResponse
// @Failure      400  {object}  ErrorResponse "Genre name is required"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Genre already exists"
// @Router       /genre [post]
func CreateGenre(c *gin.Context) {
	var input GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Genre name is required"})
		return
	}

	var existing models.Genre
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Genre already exists"})
		return
	}

	genre := models.Genre{Name: input.Name}
	if err := database.DB.Create(&genre).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create genre"})
		return
	}

	c.JSON(http.StatusCreated, GenreResponse{ID: genre.ID, Name: genre.Name})
}

// GetGenres godoc
// @Summary      Get all genres
// @Description  Retrieves a list of all genres.
// @Tags         genres
// @Produce      json
// @Success      200  {array}  GenreResponse
// @Router       /genre [get]
func GetGenres(c *gin.Context) {
	var genres []models.Genre
	database.DB.Find(&genres)

	response := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		response = append(response, GenreResponse{ID: genre.ID, Name: genre.Name})
	}
	c.JSON(http.StatusOK, response)
}
