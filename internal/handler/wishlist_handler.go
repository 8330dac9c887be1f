package handler

import (
	"net/http"
	"strconv"

	"github.com/hanz0pro/backend/internal/auth"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/logger"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// WishListItemResponse describes a single wishlist row.
type WishListItemResponse struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
	GameID uint `json:"game_id"`
}

// WishListEntryResponse is a wishlist row joined with full game details.
type WishListEntryResponse struct {
	WishlistItemID uint     `json:"wishlist_item_id"`
	GameID         uint     `json:"game_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Discount       float64  `json:"discount"`
	ImagePath      string   `json:"image_path"`
	Genres         []string `json:"genres"`
	Tags           []string `json:"tags"`
}

// endregion

// region --- Handlers ---

// AddToWishlist godoc
// @Summary      Add a game to the caller's wishlist
// @Description  Idempotent; adding a game already on the wishlist succeeds without creating a second entry.
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  MessageResponse "already on the wishlist"
// @Success      201  {object}  map[string]interface{} "added"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  MessageResponse "game not found"
// @Failure      500  {object}  MessageResponse
// @Router       /wishlist/{id} [post]
func AddToWishlist(c *gin.Context) {
	userID := c.GetUint(auth.ContextUserID)
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game ID."})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, uint(gameID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
		return
	}

	item := models.WishListItem{UserID: userID, GameID: uint(gameID)}
	// ON CONFLICT DO NOTHING makes the add idempotent even under
	// concurrent requests; zero affected rows means the entry existed.
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoNothing: true,
	}).Create(&item)
	if result.Error != nil {
		logger.Log.Error("failed to add wishlist entry", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add to wishlist."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Game is already on your wishlist."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Added to wishlist.",
		"item": WishListItemResponse{
			ID:     item.ID,
			UserID: item.UserID,
			GameID: item.GameID,
		},
	})
}

// GetMyWishlist godoc
// @Summary      List the caller's wishlist
// @Description  Returns the authenticated user's wishlist with full game details.
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   WishListEntryResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/wishlist [get]
func GetMyWishlist(c *gin.Context) {
	userID := c.GetUint(auth.ContextUserID)

	var items []models.WishListItem
	err := database.DB.
		Preload("Game.Genres").
		Preload("Game.Tags").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wishlist"})
		return
	}

	response := make([]WishListEntryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newWishListEntryResponse(item))
	}

	c.JSON(http.StatusOK, response)
}

// endregion

// region --- Helpers ---

func newWishListEntryResponse(item models.WishListItem) WishListEntryResponse {
	genres := make([]string, 0, len(item.Game.Genres))
	for _, genre := range item.Game.Genres {
		genres = append(genres, genre.Name)
	}
	tags := make([]string, 0, len(item.Game.Tags))
	for _, tag := range item.Game.Tags {
		tags = append(tags, tag.Name)
	}

	return WishListEntryResponse{
		WishlistItemID: item.ID,
		GameID:         item.GameID,
		Title:          item.Game.Title,
		Description:    item.Game.Description,
		Price:          item.Game.Price,
		Discount:       item.Game.Discount,
		ImagePath:      item.Game.ImagePath,
		Genres:         genres,
		Tags:           tags,
	}
}

// endregion
