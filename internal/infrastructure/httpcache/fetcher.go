package httpcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"go.uber.org/zap"
)

// DirectFetcher выполняет подписанный GET без кеша
type DirectFetcher struct {
	httpClient *http.Client
	signer     repository.URLSigner
	logger     *zap.Logger
}

// NewDirectFetcher создает fetcher без кеша. signer может быть nil
func NewDirectFetcher(httpClient *http.Client, signer repository.URLSigner, logger *zap.Logger) *DirectFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DirectFetcher{
		httpClient: httpClient,
		signer:     signer,
		logger:     logger,
	}
}

// Fetch выполняет GET и возвращает тело ответа целиком.
// Ответ не 2xx возвращается как *StatusError, повторов нет
func (f *DirectFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	requestURL := rawURL
	if f.signer != nil {
		signed, err := f.signer.SignURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to sign url: %w", err)
		}
		requestURL = signed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		f.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		f.logger.Error("Upstream returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Fetcher - GET с URL кешем. Ключ кеша - строка URL как есть
type Fetcher struct {
	direct *DirectFetcher
	store  repository.URLCacheRepository
	maxAge time.Duration
	logger *zap.Logger
}

// NewFetcher создает кеширующий fetcher. maxAge <= 0 означает domain.DefaultMaxCacheAge
func NewFetcher(
	store repository.URLCacheRepository,
	direct *DirectFetcher,
	maxAge time.Duration,
	logger *zap.Logger,
) *Fetcher {
	if maxAge <= 0 {
		maxAge = domain.DefaultMaxCacheAge
	}
	return &Fetcher{
		direct: direct,
		store:  store,
		maxAge: maxAge,
		logger: logger,
	}
}

// Fetch возвращает тело из кеша или из сети
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := f.Get(ctx, rawURL, false)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Get возвращает свежую запись кеша без обращения к сети, иначе выполняет
// запрос и перезаписывает запись. Ошибки хранилища не прерывают запрос
func (f *Fetcher) Get(ctx context.Context, rawURL string, forceNoCache bool) (*domain.CachedResponse, error) {
	if !forceNoCache {
		data, ok, err := f.store.GetContent(ctx, rawURL, domain.CacheCategoryURL, f.maxAge)
		if err != nil {
			f.logger.Warn("URL cache lookup failed, falling back to network", zap.Error(err))
		} else if ok && len(data) > 0 {
			f.logger.Debug("URL cache hit", zap.Int("size", len(data)))
			return &domain.CachedResponse{Body: data, FromCache: true}, nil
		}
	}

	body, err := f.direct.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := f.store.SaveContent(ctx, rawURL, domain.CacheCategoryURL, body); err != nil {
		f.logger.Warn("Failed to save response to URL cache", zap.Error(err))
	}

	f.logger.Debug("URL fetched from network",
		zap.Bool("force_no_cache", forceNoCache),
		zap.Int("size", len(body)))

	return &domain.CachedResponse{Body: body, FromCache: false}, nil
}
