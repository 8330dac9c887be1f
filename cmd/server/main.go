package main

import (
	"fmt"
	"log"

	"github.com/hanz0pro/backend/internal/config"
	"github.com/hanz0pro/backend/internal/database"
	"github.com/hanz0pro/backend/internal/logger"
	"github.com/hanz0pro/backend/internal/revocation"
	"github.com/hanz0pro/backend/internal/router"

	// Swagger imports
	_ "github.com/hanz0pro/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Game Catalog API
// @version         1.0
// @description     Catalog/storefront backend: accounts, games, reviews and wishlists.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	if err := database.SeedRoles(database.DB); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	// Token revocation is optional; without redis, tokens age out on their own.
	if config.AppConfig.RedisAddr != "" {
		store, err := revocation.NewRedisStore(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		revocation.Default = store
		log.Println("Token revocation store connected.")
	}

	r := router.Setup()

	fmt.Printf("Server is running on :%s\n", config.AppConfig.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", config.AppConfig.Port)
	log.Fatal(r.Run(":" + config.AppConfig.Port))
}
