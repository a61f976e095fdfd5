package repository

import (
	"context"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
)

// URLCacheRepository определяет хранилище ответов HTTP по ключу
type URLCacheRepository interface {
	// GetContent возвращает данные, если запись есть и ее возраст не больше maxAge.
	// Промах кеша: nil, false, nil
	GetContent(ctx context.Context, key string, category domain.CacheCategory, maxAge time.Duration) ([]byte, bool, error)

	// SaveContent сохраняет (перезаписывает) запись с текущим временем
	SaveContent(ctx context.Context, key string, category domain.CacheCategory, data []byte) error
}
