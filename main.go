package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/guedes-jr/store-delizandra-api/config"
	"github.com/guedes-jr/store-delizandra-api/middleware"
	"github.com/guedes-jr/store-delizandra-api/models"
	"github.com/guedes-jr/store-delizandra-api/repository"
	"github.com/guedes-jr/store-delizandra-api/routes"
	"github.com/guedes-jr/store-delizandra-api/services/checkout"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	// Init DB
	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("DB connection failed")
	}

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
		&models.ProductReview{},
	); err != nil {
		logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	// Gin setup
	r := gin.New()
	r.Use(middleware.RequestLogger(&logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories and the checkout service
	products := repository.NewProductRepo(db)
	inventory := repository.NewInventoryRepo(db)
	orders := repository.NewOrderRepo(db)

	deps := routes.Deps{
		Config:    cfg,
		Products:  products,
		Inventory: inventory,
		Orders:    orders,
		Reviews:   repository.NewReviewRepo(db),
		Images:    repository.NewImageRepo(db),
		Checkout:  checkout.NewService(products, inventory, orders, cfg),
	}
	routes.SetupRoutes(r, deps)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
