package handler

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hanz0pro/backend/internal/config"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput defines the body for game creation. Genres and tags are
// referenced by name; unknown names are ignored.
type GameInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	ImagePath   string   `json:"image_path"`
	Genres      []string `json:"genres"`
	Tags        []string `json:"tags"`
}

// GameResponse describes a game with its genre and tag names.
type GameResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	ImagePath   string   `json:"image_path"`
	Genres      []string `json:"genres"`
	Tags        []string `json:"tags"`
}

func newGameResponse(game models.Game) GameResponse {
	genres := make([]string, 0, len(game.Genres))
	for _, genre := range game.Genres {
		genres = append(genres, genre.Name)
	}
	tags := make([]string, 0, len(game.Tags))
	for _, tag := range game.Tags {
		tags = append(tags, tag.Name)
	}

	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		Price:       game.Price,
		Discount:    game.Discount,
		ImagePath:   game.ImagePath,
		Genres:      genres,
		Tags:        tags,
	}
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game and attaches genres and tags by name (case-insensitive).
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse "Title is required"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Title already exists"
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	var existing models.Game
	if err := database.DB.Where("title = ?", input.Title).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Game already exists"})
		return
	}

	game := models.Game{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Discount:    clampDiscount(input.Discount),
		ImagePath:   input.ImagePath,
		Genres:      findGenresByName(input.Genres),
		Tags:        findTagsByName(input.Tags),
	}

	if err := database.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Removes a game together with its reviews and wishlist entries.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Delete(&models.Game{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games with genres and tags, in insertion order.
// @Tags         games
// @Produce      json
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[GameResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = NormalizePaging(page, limit)

	paginated, err := Paginate[models.Game](
		database.DB.Preload("Genres").Preload("Tags").Order("id"),
		page, limit,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(paginated.Data))
	for _, game := range paginated.Data {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, paginated.Meta.TotalItems, page, limit))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single game, including its genres and tags.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.Preload("Genres").Preload("Tags").First(&game, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// GetGameImage godoc
// @Summary      Serve a game's cover image
// @Description  Serves the stored image from the static directory. Paths are resolved relative to it; traversal outside is rejected.
// @Tags         games
// @Produce      octet-stream
// @Param        id path int true "Game ID"
// @Success      200 {file} file
// @Failure      404 {object} ErrorResponse
// @Router       /games/{id}/image [get]
func GetGameImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if game.ImagePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game has no image"})
		return
	}

	// Image paths are stored relative to the static dir. Clean before
	// rooting and reject anything that would resolve outside it.
	rel := filepath.Clean(filepath.FromSlash(game.ImagePath))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	c.File(filepath.Join(config.AppConfig.StaticDir, rel))
}

// endregion

// region --- Helpers ---

// clampDiscount coerces an out-of-range discount percentage to 0.
func clampDiscount(discount float64) float64 {
	if discount < 0 || discount > 100 {
		return 0
	}
	return discount
}

func findGenresByName(names []string) []*models.Genre {
	var genres []*models.Genre
	for _, name := range names {
		var genre models.Genre
		if err := database.DB.Where("LOWER(name) = LOWER(?)", name).First(&genre).Error; err == nil {
			genres = append(genres, &genre)
		}
	}
	return genres
}

func findTagsByName(names []string) []*models.Tag {
	var tags []*models.Tag
	for _, name := range names {
		var tag models.Tag
		if err := database.DB.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error; err == nil {
			tags = append(tags, &tag)
		}
	}
	return tags
}

// endregion
