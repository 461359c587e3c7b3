package util

import (
	"context"
	"os"
	"strconv"
	"time"

	"virtual-product-studio/api/internal/common"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	CatalogSourceStatic = "static"
	CatalogSourceMongo  = "mongo"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port          string
	GinMode       string
	RedisURL      string
	DatabaseURL   string
	DatabaseName  string
	CatalogSource string
	SessionTTL    time.Duration
	RateLimit     uint
	LogLevel      string
}

// LoadConfig reads the environment once. A missing .env file is not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("no .env file found, using environment variables")
	}

	cfg := Config{
		Port:          envOr("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		RedisURL:      os.Getenv("REDIS_URL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DatabaseName:  envOr("DB_NAME", "studio"),
		CatalogSource: envOr("CATALOG_SOURCE", CatalogSourceStatic),
		SessionTTL:    common.DEFAULT_SESSION_TTL,
		RateLimit:     5,
		LogLevel:      envOr("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid SESSION_TTL %q", v)
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid RATE_LIMIT %q", v)
		}
		cfg.RateLimit = uint(limit)
	}

	if cfg.CatalogSource != CatalogSourceStatic && cfg.CatalogSource != CatalogSourceMongo {
		return Config{}, errors.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
	if cfg.CatalogSource == CatalogSourceMongo && cfg.DatabaseURL == "" {
		return Config{}, errors.New("CATALOG_SOURCE=mongo requires DATABASE_URL")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDB opens and pings a MongoDB connection.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	Logger.Info("starting MongoDB connection")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	Logger.Info("MongoDB connection successful")
	return client, nil
}

// GetCollection Get collection from Db
func GetCollection(client *mongo.Client, dbName, name string) *mongo.Collection {
	return client.Database(dbName).Collection(name)
}

// ConnectRedis builds a Redis client from a redis:// URL.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid REDIS_URL")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	Logger.Info("redis connection successful", zap.String("addr", opts.Addr))
	return client, nil
}
