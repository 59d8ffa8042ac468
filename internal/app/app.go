package app

import (
	"errors"
	"fmt"
	"os"

	"legalvault_backend/database"
	"legalvault_backend/internal/auth"
	"legalvault_backend/internal/config"
	"legalvault_backend/internal/email"
	"legalvault_backend/internal/handlers"
	"legalvault_backend/internal/logger"
	"legalvault_backend/internal/middleware"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/routes"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/storage"
	"legalvault_backend/internal/validator"
	"legalvault_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstUser(gormDB); err != nil {
		logger.Fatal("Failed to seed first user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires the full request pipeline. Tests call this with an
// in-memory database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	apperrors.SetDebug(cfg.Server.Env == "development")

	files, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	mailer := email.NewMailer(cfg)
	serviceContainer := services.NewServiceContainer(gormDB, cfg, files, mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, cfg, validator.New())

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(cfg.ClientURL),
		middleware.DBMiddleware(gormDB),
	)
	ginRouter.Static("/uploads", cfg.Storage.BasePath)

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

// seedFirstUser creates the initial Lawyer account from the environment
// when the user table is empty. The first Admin is then appointed
// through the role-change endpoint, which only allows it while no Admin
// exists.
func seedFirstUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seedEmail := os.Getenv("SEED_EMAIL")
	seedPassword := os.Getenv("SEED_PASSWORD")
	if seedEmail == "" || seedPassword == "" {
		return errors.New("empty user table and SEED_EMAIL/SEED_PASSWORD not set")
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return err
	}
	user := &models.User{
		Email:        seedEmail,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Account",
		Role:         models.UserRoleLawyer,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	logger.Info("Seeded first user", "email", seedEmail)
	return nil
}
