package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dashmart.backend/internal/config"
	"dashmart.backend/internal/infrastructure/repositories"
	"dashmart.backend/internal/interfaces/http/handlers"
	"dashmart.backend/internal/interfaces/http/middleware"
	"dashmart.backend/internal/usecases"
	"dashmart.backend/pkg/jwt"
	"dashmart.backend/pkg/logger"
	"dashmart.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(redis.Config{URL: cfg.Redis.URL, Password: cfg.Redis.Password}); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	apiKeyRepo := repositories.NewApiKeyRepository(db)
	productRepo := repositories.NewProductRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	driverRepo := repositories.NewDriverRepository(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	apiKeyUsecase := usecases.NewApiKeyUsecase(apiKeyRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, vendorRepo)
	vendorUsecase := usecases.NewVendorUsecase(vendorRepo)
	driverUsecase := usecases.NewDriverUsecase(driverRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	apiKeyHandler := handlers.NewApiKeyHandler(apiKeyUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	vendorHandler := handlers.NewVendorHandler(vendorUsecase)
	driverHandler := handlers.NewDriverHandler(driverUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerRoutes(r, routeDeps{
		authHandler:    authHandler,
		apiKeyHandler:  apiKeyHandler,
		productHandler: productHandler,
		vendorHandler:  vendorHandler,
		driverHandler:  driverHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
		apiKeyAuth:     middleware.ApiKeyAuth(apiKeyUsecase),
	})

	logger.Info(context.Background(), "Starting server", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
