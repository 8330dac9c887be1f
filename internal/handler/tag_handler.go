package handler

import (
	"net/http"

	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type TagInput struct {
	Name string `json:"name" binding:"required"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateTag godoc
// @Summary      Create a new tag
// @Description  Creates a tag with a unique name.
// @Tags         admin-tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body TagInput true "Tag Info"
// @Success      201  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse "Tag name is required"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Tag already exists"
// @Router       /tag [post]
func CreateTag(c *gin.Context) {
	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name is required"})
		return
	}

	var existing models.Tag
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag already exists"})
		return
	}

	tag := models.Tag{Name: input.Name}
	if err := database.DB.Create(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}

	c.JSON(http.StatusCreated, TagResponse{ID: tag.ID, Name: tag.Name})
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves a list of all tags.
// @Tags         tags
// @Produce      json
// @Success      200  {array}  TagResponse
// @Router       /tag [get]
func GetTags(c *gin.Context) {
	var tags []models.Tag
	database.DB.Find(&tags)

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, TagResponse{ID: tag.ID, Name: tag.Name})
	}
	c.JSON(http.StatusOK, response)
}
