package env

import (
	"os"
	"slot_backend/internal/config"
	"strings"
)

const (
	redisURLEnvName = "REDIS_URL"
)

type cacheConfig struct {
	url string
}

// NewCacheConfig Кэш опционален, пустой REDIS_URL не ошибка
func NewCacheConfig() config.CacheConfig {
	return &cacheConfig{
		url: strings.TrimSpace(os.Getenv(redisURLEnvName)),
	}
}

func (cfg *cacheConfig) URL() string {
	return cfg.url
}

func (cfg *cacheConfig) Enabled() bool {
	return len(cfg.url) != 0
}
