package handler

import (
	"net/http"

	"github.com/hanz0pro/backend/internal/auth"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/models"
	"github.com/hanz0pro/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Index godoc
// @Summary      API welcome message
// @Tags         util
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the API!"})
}

// Health godoc
// @Summary      Liveness check
// @Tags         util
// @Produce      json
// @Success      200 {object} map[string]string "{"status": "ok"}"
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck godoc
// @Summary      Database connectivity check
// @Description  Counts users to prove the database answers queries.
// @Tags         util
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{} "{"db": "ok", "users": 42}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      500 {object} map[string]string
// @Router       /db-check [get]
func DBCheck(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"db": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"db": "ok", "users": count})
}

// DebugToken godoc
// @Summary      Inspect the presented token
// @Description  Verifies the bearer token and reports the subject, or the failure reason.
// @Tags         util
// @Produce      json
// @Success      200 {object} map[string]interface{} "{"msg": "Token OK", "user_id": 1}"
// @Failure      422 {object} map[string]string "{"msg": "Token ERROR", "details": "..."}"
// @Router       /debug-token [get]
func DebugToken(c *gin.Context) {
	token := auth.BearerToken(c.GetHeader("Authorization"))

	claims, err := jwt.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Token ERROR", "details": err.Error()})
		return
	}

	userID, err := claims.UserID()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Token ERROR", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Token OK", "user_id": userID})
}

// AdminOnly godoc
// @Summary      Admin diagnostic endpoint
// @Tags         util
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /admin/only [get]
func AdminOnly(c *gin.Context) {
	userID := c.GetUint(auth.ContextUserID)
	c.JSON(http.StatusOK, gin.H{"msg": "Admin access granted", "user_id": userID})
}
