package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/hanz0pro/backend/internal/auth"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/logger"
	"github.com/hanz0pro/backend/internal/models"
	"github.com/hanz0pro/backend/internal/revocation"
	"github.com/hanz0pro/backend/pkg/jwt"
	"github.com/hanz0pro/backend/pkg/password"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// region --- DTOs ---

// CredentialsInput defines the body for registration and login.
type CredentialsInput struct {
	Username string `json:"username" binding:"required" example:"janek"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RegisteredUserResponse describes a freshly created account.
type RegisteredUserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"janek"`
}

// LoginResponse carries the access token and the role snapshot embedded in it.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	Roles       []string `json:"roles"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new account. Registration does not log the user in.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body CredentialsInput true "Credentials"
// @Success      201  {object}  map[string]interface{} "{"msg": "User created", "user": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username already taken"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	digest, err := password.Hash(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Password: digest,
	}

	// Attach the default role when the row exists; a missing role row is
	// not an error, the account just starts without roles.
	var defaultRole models.Role
	if err := database.DB.Where("name = ?", models.RoleUser).First(&defaultRole).Error; err == nil {
		user.Roles = []*models.Role{&defaultRole}
	}

	// The unique username constraint is the arbiter, so two concurrent
	// registrations of the same name both resolve to a clean 409.
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		logger.Log.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "User created",
		"user": RegisteredUserResponse{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Verifies credentials and returns an access token with the user's role snapshot.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body CredentialsInput true "Credentials"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid username or password"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	// Unknown user and wrong password produce the same response so the
	// caller cannot tell which part failed.
	var user models.User
	err := database.DB.Preload("Roles").Where("username = ?", input.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !password.Check(user.Password, input.Password)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if err != nil {
		logger.Log.Error("failed to look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	token, err := jwt.GenerateToken(user.ID, roles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Roles:       roles,
	})
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Revokes the presented token for its remaining lifetime.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string "{"msg": "Token revoked"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/logout [post]
func LogoutUser(c *gin.Context) {
	value, _ := c.Get(auth.ContextClaims)
	claims, ok := value.(*jwt.AccessClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if revocation.Default == nil {
		// Revocation is optional; without a store the token simply ages out.
		c.JSON(http.StatusOK, gin.H{"msg": "Token revoked"})
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := revocation.Default.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		logger.Log.Error("failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Token revoked"})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes an account together with its reviews and wishlist entries.
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]string "{"message": "User deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// endregion
