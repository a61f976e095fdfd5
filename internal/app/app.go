package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gmaps-business-provider/internal/config"
	"github.com/gmaps-business-provider/internal/domain/repository"
	"github.com/gmaps-business-provider/internal/infrastructure/googlemaps"
	"github.com/gmaps-business-provider/internal/infrastructure/httpcache"
	"github.com/gmaps-business-provider/internal/provider"
	"github.com/gmaps-business-provider/internal/repository/cache"
	"github.com/gmaps-business-provider/internal/repository/postgres"
	"github.com/gmaps-business-provider/internal/usecase"
	"go.uber.org/zap"
)

// App - собранные зависимости сервиса, общие для HTTP API и CLI
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Credentials *googlemaps.Credentials
	Registry    *provider.Registry

	TileUC      *usecase.TileUseCase
	GeocodingUC *usecase.GeocodingUseCase
	RoutingUC   *usecase.RoutingUseCase

	// CacheHealth проверяет внешнее хранилище кеша, nil для локальных
	CacheHealth func(ctx context.Context) error

	closers []func() error
}

// New подключает хранилище URL кеша и собирает клиент Google, use case и провайдеров
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{
		Config:      cfg,
		Logger:      log,
		Credentials: googlemaps.NewCredentials(),
	}

	if err := a.Credentials.SetCredentialString(cfg.Google.Credentials); err != nil {
		return nil, fmt.Errorf("invalid GOOGLE_CREDENTIALS: %w", err)
	}
	if !a.Credentials.Active() {
		log.Warn("Google credentials not configured, requests will be sent unsigned")
	}

	store, err := a.newCacheStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Google.Timeout()}
	direct := httpcache.NewDirectFetcher(httpClient, a.Credentials, log.Named("fetcher"))
	fetcher := httpcache.NewFetcher(store, direct, cfg.Cache.MaxAge, log.Named("url_cache"))

	var serviceFetcher repository.ResponseFetcher = direct
	if cfg.Google.CacheServiceResponses {
		serviceFetcher = fetcher
	}
	client := googlemaps.NewGoogleMapsClient(cfg.Google.BaseURL, a.Credentials, serviceFetcher, log.Named("google"))

	a.TileUC = usecase.NewTileUseCase(client, fetcher, cfg.Tile, log.Named("tiles"))
	a.GeocodingUC = usecase.NewGeocodingUseCase(client, log.Named("geocoding"))
	a.RoutingUC = usecase.NewRoutingUseCase(client, log.Named("routing"))

	a.Registry, err = provider.NewRegistry(a.Credentials, a.TileUC, a.GeocodingUC, a.RoutingUC, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	log.Info("Google Maps providers initialized",
		zap.Int("providers", len(a.Registry.All())),
		zap.Stringer("credentials", a.Credentials),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("cache_service_responses", cfg.Google.CacheServiceResponses))

	return a, nil
}

func (a *App) newCacheStore(ctx context.Context) (repository.URLCacheRepository, error) {
	cfg := a.Config
	log := a.Logger

	switch cfg.Cache.Backend {
	case cache.BackendRedis:
		redisClient, err := cache.NewRedis(ctx, &cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("redis URL cache: %w", err)
		}
		a.closers = append(a.closers, redisClient.Close)
		a.CacheHealth = redisClient.Health
		log.Info("Using redis URL cache", zap.String("addr", cfg.GetRedisAddr()), zap.Duration("ttl", cfg.Cache.RedisTTL))
		return cache.NewRedisStore(redisClient, cfg.Cache.RedisTTL), nil

	case cache.BackendPostgres:
		db, err := postgres.New(ctx, &cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.CacheHealth = db.Health

		repo := postgres.NewURLCacheRepository(db)
		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(schemaCtx); err != nil {
			return nil, err
		}
		log.Info("Using postgres URL cache", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))
		return repo, nil

	default:
		return cache.NewLocalStore(&cfg.Cache, log)
	}
}

// Close закрывает подключения к хранилищам кеша
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
