package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/config"
	"github.com/dinehub/restaurant-backend/database"
	"github.com/dinehub/restaurant-backend/models"
	"github.com/dinehub/restaurant-backend/router"
	"github.com/dinehub/restaurant-backend/storage"
	"github.com/dinehub/restaurant-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	db, err := cfg.OpenDB()
	if err != nil {
		if errors.Is(err, config.ErrMissingDSN) {
			utils.ErrorLogger.Fatal("DATABASE_DSN is not set")
		}
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if cfg.SeedData {
		if err := database.SeedFoods(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding sample foods: %v", err)
		}
	}

	store, err := buildImageStore(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize image storage: %v", err)
	}

	r := router.SetupRouter(db, store, cfg)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func buildImageStore(cfg *config.Config) (storage.ImageStore, error) {
	switch cfg.StorageDriver {
	case "r2":
		return storage.NewR2Store(context.Background())
	default:
		return storage.NewLocalStore(cfg.UploadDir, cfg.BaseURL)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Food{},
		&models.Staff{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
