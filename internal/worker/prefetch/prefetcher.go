package prefetch

import (
	"context"

	"github.com/gmaps-business-provider/internal/worker"
	"go.uber.org/zap"
)

// Prefetcher прогревает URL кеш тайлами области пулом воркеров
type Prefetcher struct {
	tiles       TileGetter
	concurrency int
	logger      *zap.Logger
}

func NewPrefetcher(tiles TileGetter, concurrency int, logger *zap.Logger) *Prefetcher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Prefetcher{
		tiles:       tiles,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run загружает все тайлы области. При отмене ctx возвращает ctx.Err()
// и статистику по уже обработанным тайлам
func (p *Prefetcher) Run(ctx context.Context, area Area, refresh bool) (*Stats, error) {
	jobs, err := Plan(area)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Starting tile prefetch",
		zap.String("map_type", area.MapType.String()),
		zap.Int("tiles", len(jobs)),
		zap.Int("min_zoom", area.MinZoom),
		zap.Int("max_zoom", area.MaxZoom),
		zap.Int("concurrency", p.concurrency))

	stats := &Stats{}
	queue := make(chan Job, p.concurrency*2)

	manager := worker.NewWorkerManager(p.logger)
	for i := 0; i < p.concurrency; i++ {
		manager.Register(NewTileWorker(i, p.tiles, queue, refresh, stats, p.logger))
	}
	if err := manager.Start(ctx); err != nil {
		return nil, err
	}

	feedErr := feed(ctx, queue, jobs)
	close(queue)
	if feedErr != nil {
		if err := manager.Stop(); err != nil {
			p.logger.Warn("Prefetch workers did not stop", zap.Error(err))
		}
	} else {
		manager.Wait()
	}

	p.logger.Info("Tile prefetch finished",
		zap.Int64("fetched", stats.Fetched.Load()),
		zap.Int64("from_cache", stats.FromCache.Load()),
		zap.Int64("missing", stats.Missing.Load()),
		zap.Int64("failed", stats.Failed.Load()))

	return stats, feedErr
}

func feed(ctx context.Context, queue chan<- Job, jobs []Job) error {
	for _, job := range jobs {
		select {
		case queue <- job:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
