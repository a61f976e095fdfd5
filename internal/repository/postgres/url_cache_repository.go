package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/hashutil"
	"go.uber.org/zap"
)

const createURLCacheTable = `
CREATE TABLE IF NOT EXISTS url_cache (
	category   TEXT        NOT NULL,
	key_digest TEXT        NOT NULL,
	url        TEXT        NOT NULL,
	data       BYTEA       NOT NULL,
	stored_at  TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (category, key_digest)
)`

// URLCacheRepository - URL кеш в таблице url_cache
type URLCacheRepository struct {
	db     *DB
	logger *zap.Logger
	now    func() time.Time
}

func NewURLCacheRepository(db *DB) *URLCacheRepository {
	return &URLCacheRepository{
		db:     db,
		logger: db.logger,
		now:    time.Now,
	}
}

// EnsureSchema создает таблицу url_cache, если ее нет
func (r *URLCacheRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createURLCacheTable); err != nil {
		return fmt.Errorf("create url_cache table: %w", err)
	}
	return nil
}

type urlCacheRow struct {
	Data     []byte    `db:"data"`
	StoredAt time.Time `db:"stored_at"`
}

func (r *URLCacheRepository) GetContent(ctx context.Context, key string, category domain.CacheCategory, maxAge time.Duration) ([]byte, bool, error) {
	query := `
		SELECT data, stored_at
		FROM url_cache
		WHERE category = $1 AND key_digest = $2
	`

	var row urlCacheRow
	err := r.db.GetContext(ctx, &row, query, string(category), hashutil.KeyDigest(key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Failed to read url cache", zap.String("category", string(category)), zap.Error(err))
		return nil, false, fmt.Errorf("url cache get: %w", err)
	}

	if r.now().Sub(row.StoredAt) > maxAge {
		return nil, false, nil
	}

	return row.Data, true, nil
}

func (r *URLCacheRepository) SaveContent(ctx context.Context, key string, category domain.CacheCategory, data []byte) error {
	query := `
		INSERT INTO url_cache (category, key_digest, url, data, stored_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category, key_digest)
		DO UPDATE SET url = EXCLUDED.url, data = EXCLUDED.data, stored_at = EXCLUDED.stored_at
	`

	_, err := r.db.ExecContext(ctx, query, string(category), hashutil.KeyDigest(key), key, data, r.now().UTC())
	if err != nil {
		r.logger.Error("Failed to write url cache", zap.String("category", string(category)), zap.Error(err))
		return fmt.Errorf("url cache save: %w", err)
	}

	return nil
}
