package domain

import "time"

// CacheCategory разделяет пространства ключей в хранилище кеша
type CacheCategory string

const (
	// CacheCategoryURL - ответы HTTP по URL запроса
	CacheCategoryURL CacheCategory = "url_cache"
)

// DefaultMaxCacheAge - максимальный возраст записи URL кеша
const DefaultMaxCacheAge = 20 * 24 * time.Hour

// CachedResponse - тело ответа и признак того, что оно взято из кеша
type CachedResponse struct {
	Body      []byte
	FromCache bool
}
