package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hanz0pro/backend/internal/auth"
	"github.com/hanz0pro/backend/internal/config"
	"github.com/hanz0pro/backend/internal/revocation"
	"github.com/hanz0pro/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is a map-backed revocation store for tests.
type memoryStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{revoked: make(map[string]bool)}
}

func (s *memoryStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = true
	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[tokenID], nil
}

func setupGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	old := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:             "middleware-test-secret",
		AccessTokenTTLMinutes: 15,
	}
	t.Cleanup(func() {
		config.AppConfig = old
		revocation.Default = nil
	})

	r := gin.New()
	r.GET("/protected", auth.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(auth.ContextUserID)})
	})
	r.GET("/admin", auth.AuthMiddleware(), auth.RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := setupGuardedRouter(t)

	t.Run("Missing Token", func(t *testing.T) {
		w := get(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Missing Authorization header")
	})

	t.Run("Malformed Token", func(t *testing.T) {
		w := get(r, "/protected", "garbage")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Token")
	})

	t.Run("Expired Token", func(t *testing.T) {
		config.AppConfig.AccessTokenTTLMinutes = -1
		token, err := jwt.GenerateToken(7, []string{"user"})
		require.NoError(t, err)
		config.AppConfig.AccessTokenTTLMinutes = 15

		w := get(r, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token Expired")
	})

	t.Run("Bad Signature", func(t *testing.T) {
		token, err := jwt.GenerateToken(7, []string{"user"})
		require.NoError(t, err)

		config.AppConfig.JWTSecret = "a-different-secret"
		w := get(r, "/protected", token)
		config.AppConfig.JWTSecret = "middleware-test-secret"

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "signature")
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := jwt.GenerateToken(7, []string{"user"})
		require.NoError(t, err)

		w := get(r, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("Revoked Token", func(t *testing.T) {
		store := newMemoryStore()
		revocation.Default = store
		defer func() { revocation.Default = nil }()

		token, err := jwt.GenerateToken(7, []string{"user"})
		require.NoError(t, err)
		claims, err := jwt.ParseToken(token)
		require.NoError(t, err)
		require.NoError(t, store.Revoke(context.Background(), claims.ID, time.Minute))

		w := get(r, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Revoked Token")
	})
}

func TestRequireRole(t *testing.T) {
	r := setupGuardedRouter(t)

	t.Run("Role Present", func(t *testing.T) {
		token, err := jwt.GenerateToken(1, []string{"user", "admin"})
		require.NoError(t, err)

		w := get(r, "/admin", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Role Absent", func(t *testing.T) {
		token, err := jwt.GenerateToken(1, []string{"user"})
		require.NoError(t, err)

		w := get(r, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden")
	})

	t.Run("No Token", func(t *testing.T) {
		w := get(r, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
