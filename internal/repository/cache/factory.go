package cache

import (
	"fmt"

	"github.com/gmaps-business-provider/internal/config"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"go.uber.org/zap"
)

// Backend names for CACHE_BACKEND
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendDisabled = "disabled"
)

// NewLocalStore создает локальное хранилище URL кеша (file, memory, disabled).
// redis и postgres требуют подключения и создаются при старте приложения
func NewLocalStore(cfg *config.CacheConfig, log *zap.Logger) (repository.URLCacheRepository, error) {
	switch cfg.Backend {
	case BackendMemory:
		log.Info("Using memory URL cache", zap.Int("max_entries", cfg.MemoryEntries))
		return NewMemoryStore(cfg.MemoryEntries), nil
	case BackendFile, "":
		log.Info("Using file URL cache", zap.String("cache_dir", cfg.FileDir))
		return NewFileStore(cfg.FileDir, log)
	case BackendDisabled:
		log.Info("URL cache disabled")
		return NewNoopStore(), nil
	default:
		return nil, fmt.Errorf("unknown local cache backend: %s (supported: file, memory, disabled)", cfg.Backend)
	}
}
