package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"github.com/gmaps-business-provider/internal/pkg/hashutil"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisEnvelope struct {
	Data     []byte    `json:"data"`
	StoredAt time.Time `json:"stored_at"`
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewRedisStore создает URL кеш в Redis. ttl = 0 - ключи без срока жизни,
// вытеснение остается на стороне Redis
func NewRedisStore(r *Redis, ttl time.Duration) repository.URLCacheRepository {
	return newRedisStore(r.client, ttl, r.logger)
}

func newRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *redisStore {
	return &redisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func redisKey(key string, category domain.CacheCategory) string {
	return fmt.Sprintf("urlcache:%s:%s", category, hashutil.KeyDigest(key))
}

func (s *redisStore) GetContent(ctx context.Context, key string, category domain.CacheCategory, maxAge time.Duration) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, redisKey(key, category)).Bytes()
	if err == redis.Nil {
		return nil, false, nil // Cache miss
	}
	if err != nil {
		s.logger.Error("Failed to get from cache", zap.String("category", string(category)), zap.Error(err))
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	var env redisEnvelope
	if err := json.Unmarshal(val, &env); err != nil {
		s.logger.Error("Failed to unmarshal cache entry", zap.Error(err))
		return nil, false, fmt.Errorf("unmarshal cache entry: %w", err)
	}

	if s.now().Sub(env.StoredAt) > maxAge {
		s.logger.Debug("Cache entry expired", zap.Time("stored_at", env.StoredAt))
		return nil, false, nil
	}

	s.logger.Debug("Cache hit", zap.String("category", string(category)))
	return env.Data, true, nil
}

func (s *redisStore) SaveContent(ctx context.Context, key string, category domain.CacheCategory, data []byte) error {
	payload, err := json.Marshal(redisEnvelope{Data: data, StoredAt: s.now()})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(key, category), payload, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to set cache", zap.String("category", string(category)), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	s.logger.Debug("Cache set", zap.String("category", string(category)), zap.Int("size", len(data)))
	return nil
}
