package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_SOURCE", "SESSION_TTL", "RATE_LIMIT", "DATABASE_URL", "DB_NAME", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CatalogSourceStatic, cfg.CatalogSource)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, uint(5), cfg.RateLimit)
	assert.Equal(t, "studio", cfg.DatabaseName)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT", "20")
	t.Setenv("CATALOG_SOURCE", CatalogSourceMongo)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, uint(20), cfg.RateLimit)
	assert.Equal(t, CatalogSourceMongo, cfg.CatalogSource)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"ttl":           {"SESSION_TTL": "soon"},
		"rate limit":    {"RATE_LIMIT": "-1"},
		"source":        {"CATALOG_SOURCE": "sqlite"},
		"mongo without": {"CATALOG_SOURCE": CatalogSourceMongo, "DATABASE_URL": ""},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Page(items, PaginationArgs{}))
	assert.Equal(t, []int{3, 4}, Page(items, PaginationArgs{Skip: 2, Limit: 2}))
	assert.Equal(t, []int{5}, Page(items, PaginationArgs{Skip: 4, Limit: 10}))
	assert.Empty(t, Page(items, PaginationArgs{Skip: 9}))
	assert.Equal(t, items, Page(items, PaginationArgs{Skip: -3}))
}

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := InitLogger("chatty")
	assert.Error(t, err)
}
