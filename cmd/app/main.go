package main

import (
	"log"

	"pantrypal-backend/cmd/config"
	migration "pantrypal-backend/cmd/database/migrate"
	"pantrypal-backend/internal/logger"
	"pantrypal-backend/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	utils.LoadConfig()

	if err := logger.Initialize(utils.GetConfig("LOG_LEVEL")); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if utils.GetConfig("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
