package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/handler"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertReviewRatingValidation(t *testing.T) {
	r := setupServer(t)
	_, token := createUser(t, "janek", models.RoleUser)
	game := createGame(t, "Gwent")

	for name, body := range map[string]interface{}{
		"Too High":   map[string]interface{}{"rating": 6, "comment": "x"},
		"Too Low":    map[string]interface{}{"rating": 0, "comment": "x"},
		"Missing":    map[string]interface{}{"comment": "x"},
		"Not A JSON": "rating: 5",
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/games/"+itoa(game.ID)+"/review", body, token)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	require.NoError(t, database.DB.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpsertReviewGameNotFound(t *testing.T) {
	r := setupServer(t)
	_, token := createUser(t, "janek", models.RoleUser)

	w := doJSON(r, http.MethodPost, "/api/games/999/review", map[string]interface{}{"rating": 3}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertReviewRequiresAuth(t *testing.T) {
	r := setupServer(t)
	game := createGame(t, "Gwent")

	w := doJSON(r, http.MethodPost, "/api/games/"+itoa(game.ID)+"/review", map[string]interface{}{"rating": 3}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpsertReviewCreateThenUpdate(t *testing.T) {
	r := setupServer(t)
	user, token := createUser(t, "janek", models.RoleUser)
	game := createGame(t, "Gwent")
	path := "/api/games/" + itoa(game.ID) + "/review"

	w := doJSON(r, http.MethodPost, path, map[string]interface{}{"rating": 3, "comment": "ok"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Review created.")

	var created models.Review
	require.NoError(t, database.DB.Where("user_id = ? AND game_id = ?", user.ID, game.ID).First(&created).Error)

	w = doJSON(r, http.MethodPost, path, map[string]interface{}{"rating": 5, "comment": "better"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Review updated.")

	var reviews []models.Review
	require.NoError(t, database.DB.Where("user_id = ? AND game_id = ?", user.ID, game.ID).Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, created.ID, reviews[0].ID)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "better", reviews[0].Comment)
}

func TestUpsertReviewNormalizesComment(t *testing.T) {
	r := setupServer(t)
	user, token := createUser(t, "janek", models.RoleUser)
	game := createGame(t, "Gwent")
	path := "/api/games/" + itoa(game.ID) + "/review"

	w := doJSON(r, http.MethodPost, path, map[string]interface{}{"rating": 4, "comment": "  padded  "}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, database.DB.Where("user_id = ? AND game_id = ?", user.ID, game.ID).First(&review).Error)
	assert.Equal(t, "padded", review.Comment)

	// Absent comment normalizes to the empty string.
	w = doJSON(r, http.MethodPost, path, map[string]interface{}{"rating": 4}, token)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.Where("user_id = ? AND game_id = ?", user.ID, game.ID).First(&review).Error)
	assert.Equal(t, "", review.Comment)
}

func TestGetGameReviewsNewestFirst(t *testing.T) {
	r := setupServer(t)
	first, firstToken := createUser(t, "janek", models.RoleUser)
	second, secondToken := createUser(t, "ola", models.RoleUser)
	game := createGame(t, "Gwent")
	path := "/api/games/" + itoa(game.ID) + "/review"

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, path, map[string]interface{}{"rating": 2, "comment": "meh"}, firstToken).Code)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, path, map[string]interface{}{"rating": 5, "comment": "great"}, secondToken).Code)

	w := doJSON(r, http.MethodGet, "/api/games/"+itoa(game.ID)+"/reviews", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []handler.GameReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].UserID)
	assert.Equal(t, "ola", rows[0].Username)
	assert.Equal(t, first.ID, rows[1].UserID)
	assert.Equal(t, "janek", rows[1].Username)
}

func TestGetMyReviewsIncludesGameTitle(t *testing.T) {
	r := setupServer(t)
	_, token := createUser(t, "janek", models.RoleUser)
	gwent := createGame(t, "Gwent")
	chess := createGame(t, "Chess Ultra")

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/games/"+itoa(gwent.ID)+"/review", map[string]interface{}{"rating": 4}, token).Code)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/games/"+itoa(chess.ID)+"/review", map[string]interface{}{"rating": 5}, token).Code)

	w := doJSON(r, http.MethodGet, "/api/users/me/reviews", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []handler.MyReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Chess Ultra", rows[0].GameTitle)
	assert.Equal(t, "Gwent", rows[1].GameTitle)
}
