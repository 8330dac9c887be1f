package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/hanz0pro/backend/internal/config"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/models"
	"github.com/hanz0pro/backend/internal/revocation"
	"github.com/hanz0pro/backend/internal/router"
	"github.com/hanz0pro/backend/pkg/jwt"
	"github.com/hanz0pro/backend/pkg/password"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer wires the real router against a fresh in-memory database.
// Foreign keys are enabled so cascade deletes behave like production.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	oldConfig := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:             "handler-test-secret",
		AccessTokenTTLMinutes: 15,
		FrontendOrigin:        "http://localhost:5173",
		StaticDir:             t.TempDir(),
	}

	db, err := gorm.Open(
		sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared&_foreign_keys=1"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedRoles(db))

	oldDB := database.DB
	database.DB = db
	revocation.Default = nil

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
		database.DB = oldDB
		config.AppConfig = oldConfig
	})

	return router.Setup()
}

// createUser persists a user with the given roles and returns it with a
// matching access token.
func createUser(t *testing.T, username string, roleNames ...string) (models.User, string) {
	t.Helper()

	digest, err := password.Hash("password123")
	require.NoError(t, err)

	user := models.User{Username: username, Password: digest}
	for _, name := range roleNames {
		var role models.Role
		require.NoError(t, database.DB.Where("name = ?", name).First(&role).Error)
		user.Roles = append(user.Roles, &role)
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID, roleNames)
	require.NoError(t, err)

	return user, token
}

func createGame(t *testing.T, title string) models.Game {
	t.Helper()
	game := models.Game{Title: title, Price: 59.99}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}

// doJSON performs a request against the test router. A nil body sends no
// payload; an empty token omits the Authorization header.
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}
