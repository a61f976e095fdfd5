package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/hashutil"
	"go.uber.org/zap"
)

// FileStore - дисковый URL кеш.
// Структура: {dir}/{category}/{digest[0:2]}/{digest}, время записи хранится в mtime файла
type FileStore struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStore{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (c *FileStore) buildFilePath(key string, category domain.CacheCategory) string {
	digest := hashutil.KeyDigest(key)
	return filepath.Join(c.dir, string(category), digest[:2], digest)
}

func (c *FileStore) GetContent(_ context.Context, key string, category domain.CacheCategory, maxAge time.Duration) ([]byte, bool, error) {
	filePath := c.buildFilePath(key, category)

	info, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat cache file: %w", err)
	}

	if c.now().Sub(info.ModTime()) > maxAge {
		c.logger.Debug("File cache entry expired", zap.String("path", filePath), zap.Time("stored_at", info.ModTime()))
		return nil, false, nil
	}

	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache file: %w", err)
	}

	return data, true, nil
}

func (c *FileStore) SaveContent(_ context.Context, key string, category domain.CacheCategory, data []byte) error {
	filePath := c.buildFilePath(key, category)
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	// Write atomically
	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	storedAt := c.now()
	if err := os.Chtimes(tmpPath, storedAt, storedAt); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("set cache file time: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename cache file: %w", err)
	}

	return nil
}
