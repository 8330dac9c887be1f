package router

import (
	"time"

	"github.com/hanz0pro/backend/internal/auth"
	"github.com/hanz0pro/backend/internal/config"
	"github.com/hanz0pro/backend/internal/handler"
	"github.com/hanz0pro/backend/internal/logger"
	"github.com/hanz0pro/backend/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup builds the gin engine with all middleware and routes attached.
func Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/", handler.Index)
		api.GET("/health", handler.Health)
		api.GET("/debug-token", handler.DebugToken)
		api.GET("/db-check", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.DBCheck)
		api.GET("/admin/only", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.AdminOnly)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.POST("/logout", auth.AuthMiddleware(), handler.LogoutUser)
		}

		// Reviews
		api.POST("/games/:id/review", auth.AuthMiddleware(), handler.UpsertReview)
		api.GET("/games/:id/reviews", handler.GetGameReviews)
		api.GET("/users/me/reviews", auth.AuthMiddleware(), handler.GetMyReviews)

		// Wishlist
		api.POST("/wishlist/:id", auth.AuthMiddleware(), handler.AddToWishlist)
		api.GET("/users/me/wishlist", auth.AuthMiddleware(), handler.GetMyWishlist)

		// User administration (cascades to reviews and wishlist)
		api.DELETE("/users/:id", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.DeleteUser)
	}

	games := router.Group("/games")
	{
		games.GET("", handler.GetGames)
		games.GET("/:id", handler.GetGameByID)
		games.GET("/:id/image", handler.GetGameImage)
		games.POST("", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.CreateGame)
		games.DELETE("/:id", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.DeleteGame)
	}

	genres := router.Group("/genre")
	{
		genres.GET("", handler.GetGenres)
		genres.POST("", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.CreateGenre)
	}

	tags := router.Group("/tag")
	{
		tags.GET("", handler.GetTags)
		tags.POST("", auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin), handler.CreateTag)
	}

	return router
}

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
