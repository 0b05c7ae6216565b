// @title Trivia API
// @version 1.0
// @description Question bank and quiz service for the trivia game.
// @contact.name API Support
// @license.name MIT
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/logger"
	"trivia-api/internal/middleware"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	_ "trivia-api/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCategoryTTL = 10 * time.Minute

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err), zap.String("driver", cfg.DB.Driver))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.DB.Driver))

	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)

	var cacheAdapter domain.Cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis address not set, category cache disabled")
	}

	var events domain.EventPublisher = domain.NopEventPublisher{}
	if cfg.Events.AMQPURL != "" {
		publisher, err := adapter.NewAMQPEventPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			appLogger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		events = publisher
		appLogger.Info("AMQP event publisher initialized", zap.String("exchange", cfg.Events.Exchange))
	} else {
		appLogger.Info("AMQP URL not set, event publishing disabled")
	}
	defer func() {
		if err := events.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	categoryTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Categories, defaultCategoryTTL)
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, categoryTTL)
	questionService := service.NewQuestionService(questionRepository, categoryService, events)
	quizService := service.NewQuizService(questionRepository, categoryService, domain.DefaultRandom)

	handlers := handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService),
		Question: handler.NewQuestionHandler(questionService),
		Quiz:     handler.NewQuizHandler(quizService),
	}
	healthHandler := handler.NewHealthHandler(db, cacheAdapter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: cfg.CORS.AllowHeaders,
		AllowMethods: cfg.CORS.AllowMethods,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", healthHandler.Health)

	// The bundled frontend proxies /api; direct clients use the bare paths.
	handler.RegisterRoutes(app.Group("/api"), handlers)
	handler.RegisterRoutes(app, handlers)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.App.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	fmt.Println("Server exited gracefully")
}
