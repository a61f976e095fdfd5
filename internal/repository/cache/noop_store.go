package cache

import (
	"context"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
)

// NoopStore - кеш отключен: всегда промах, запись игнорируется
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) GetContent(context.Context, string, domain.CacheCategory, time.Duration) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopStore) SaveContent(context.Context, string, domain.CacheCategory, []byte) error {
	return nil
}
