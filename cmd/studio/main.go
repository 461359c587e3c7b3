package main

import (
	"context"
	"log"
	"time"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/internal/container"
	"virtual-product-studio/api/internal/routers"
	"virtual-product-studio/api/internal/validators"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/session"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := util.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		redisClient *redis.Client
		events      internal.EventPublisher = internal.NopPublisher{}
	)
	if cfg.RedisURL != "" {
		redisClient, err = util.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis unavailable", zap.Error(err))
		}
		defer redisClient.Close()
		events = internal.NewRedisPublisher(redisClient)
	}

	source := services.NewStaticCatalogSource()
	if cfg.CatalogSource == util.CatalogSourceMongo {
		client, err := util.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("mongo unavailable", zap.Error(err))
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		source = services.NewMongoCatalogSource(client.Database(cfg.DatabaseName))
	}

	catalog, reviews, err := services.LoadCatalog(ctx, source)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	issues := validators.ValidateCatalog(catalog.GetAll())
	for _, issue := range issues {
		logger.Warn("catalog issue", zap.Stringer("issue", issue))
	}
	if validators.HasErrors(issues) {
		logger.Fatal("catalog failed validation", zap.Int("issues", len(issues)))
	}

	registry := session.NewRegistry(cfg.SessionTTL)
	serviceContainer := container.NewServiceContainer(catalog, reviews, registry, events)

	router := routers.InitRoute(serviceContainer, redisClient, cfg.RateLimit)
	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("catalogSource", cfg.CatalogSource))
	if err := router.Run("0.0.0.0:" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
