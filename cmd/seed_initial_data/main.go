package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "config/seed_data/trivia_questions.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("categories_loaded", len(seedCategories)))

	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	s := &seeder{
		tm:         repository.NewTransactionManagerAdapter(db),
		categories: categoryRepository,
		questions:  repository.NewQuestionDatabaseAdapter(db),
		log:        log,
	}

	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, cached categories will expire on their own", zap.Error(err))
		} else {
			defer redisClient.Close()
			ttl := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Categories, 0)
			s.cache = service.NewCategoryService(categoryRepository, adapter.NewRedisCacheAdapter(redisClient), ttl)
		}
	}

	if failed := s.seedAll(ctx, seedCategories); failed > 0 {
		log.Fatal("Initial data seeding finished with errors", zap.Int("failed_categories", failed))
	}
	log.Info("Initial data seeding process completed.")
}
