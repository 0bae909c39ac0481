package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/surdiana/worklog/config"
	"github.com/surdiana/worklog/internal/handler"
	"github.com/surdiana/worklog/internal/middleware"
	"github.com/surdiana/worklog/internal/repository"
	"github.com/surdiana/worklog/internal/router"
	"github.com/surdiana/worklog/internal/service"
	"github.com/surdiana/worklog/pkg/database"
	"github.com/surdiana/worklog/pkg/logger"
	"github.com/surdiana/worklog/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	// Initialize database
	dbConfig := database.DefaultConfig()
	dbConfig.Host = config.Database.Host
	dbConfig.Port = config.Database.Port
	dbConfig.User = config.Database.User
	dbConfig.Password = config.Database.Password
	dbConfig.Database = config.Database.Name
	dbConfig.SSLMode = config.Database.SSLMode

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Run auto migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed initial data
	if err := database.Seed(db); err != nil {
		// Don't fail - seed data may already exist
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	}

	// Redis backs the stats cache; a disabled client is a no-op
	redisClient := redis.NewClient(redis.Config{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.Database,
		Enabled:  config.Redis.Enabled,
	}, logger.GetLogger())
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewLogEntryRepository(db)

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.Expiration)
	userService := service.NewUserService(userRepo, jwtService)
	statsService := service.NewStatsService(logRepo, redisClient, config.Redis.StatsTTL)
	logService := service.NewLogEntryService(logRepo, statsService)

	// Handlers
	authHandler := handler.NewAuthHandler(userService, config.IsProduction())
	logHandler := handler.NewLogHandler(logService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler(db)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := router.NewRouter(
		authHandler,
		logHandler,
		statsHandler,
		healthHandler,

		authMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
