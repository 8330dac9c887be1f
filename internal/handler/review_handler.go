package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hanz0pro/backend/internal/auth"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/logger"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// ReviewInput defines the body for creating or replacing a review.
type ReviewInput struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse describes a stored review.
type ReviewResponse struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	GameID  uint   `json:"game_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// MyReviewResponse is a caller's review joined with the game title.
type MyReviewResponse struct {
	ID        uint   `json:"id"`
	GameID    uint   `json:"game_id"`
	GameTitle string `json:"game_title"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// GameReviewResponse is a game's review joined with the reviewer's username.
type GameReviewResponse struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// endregion

// region --- Handlers ---

// UpsertReview godoc
// @Summary      Create or replace the caller's review of a game
// @Description  Each user holds at most one review per game; posting again overwrites rating and comment in place.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Game ID"
// @Param        input body ReviewInput true "Review"
// @Success      200  {object}  map[string]interface{} "review updated"
// @Success      201  {object}  map[string]interface{} "review created"
// @Failure      400  {object}  MessageResponse "rating out of range"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  MessageResponse "game not found"
// @Failure      500  {object}  MessageResponse
// @Router       /games/{id}/review [post]
func UpsertReview(c *gin.Context) {
	userID := c.GetUint(auth.ContextUserID)
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game ID."})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Rating == nil || *input.Rating < 1 || *input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Field 'rating' must be an integer between 1 and 5."})
		return
	}
	rating := *input.Rating
	comment := strings.TrimSpace(input.Comment)

	var game models.Game
	if err := database.DB.First(&game, uint(gameID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
		return
	}

	var existing models.Review
	found := database.DB.
		Where("user_id = ? AND game_id = ?", userID, uint(gameID)).
		First(&existing).Error == nil

	if found {
		existing.Rating = rating
		existing.Comment = comment
		updates := map[string]interface{}{"rating": rating, "comment": comment}
		if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
			logger.Log.Error("failed to update review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save review."})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Review updated.",
			"review":  newReviewResponse(existing),
		})
		return
	}

	review := models.Review{
		UserID:  userID,
		GameID:  uint(gameID),
		Rating:  rating,
		Comment: comment,
	}
	// The unique (user_id, game_id) index plus ON CONFLICT turns a racing
	// duplicate insert into an update, so the row count never exceeds one.
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment"}),
	}).Create(&review).Error
	if err != nil {
		logger.Log.Error("failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save review."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created.",
		"review":  newReviewResponse(review),
	})
}

// GetMyReviews godoc
// @Summary      List the caller's reviews
// @Description  Returns every review written by the authenticated user, newest first, with game titles.
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   MyReviewResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/reviews [get]
func GetMyReviews(c *gin.Context) {
	userID := c.GetUint(auth.ContextUserID)

	rows := []MyReviewResponse{}
	err := reviewQuery(database.DB).
		Select("reviews.id, reviews.game_id, games.title AS game_title, reviews.rating, reviews.comment").
		Joins("JOIN games ON games.id = reviews.game_id").
		Where("reviews.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetGameReviews godoc
// @Summary      List reviews for a game
// @Description  Returns every review of a game, newest first, with reviewer usernames.
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {array}   GameReviewResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id}/reviews [get]
func GetGameReviews(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	rows := []GameReviewResponse{}
	err = reviewQuery(database.DB).
		Select("reviews.id, reviews.user_id, users.username, reviews.rating, reviews.comment").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.game_id = ?", uint(gameID)).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// endregion

// region --- Helpers ---

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID,
		UserID:  review.UserID,
		GameID:  review.GameID,
		Rating:  review.Rating,
		Comment: review.Comment,
	}
}

func reviewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Review{}).Order("reviews.id DESC")
}

// endregion
