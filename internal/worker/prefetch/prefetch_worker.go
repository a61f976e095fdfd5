package prefetch

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/worker"
	"go.uber.org/zap"
)

// TileGetter - источник тайлов, обычно usecase.TileUseCase
type TileGetter interface {
	GetTile(ctx context.Context, req domain.TileRequest) (*domain.TileImage, error)
}

// Stats - счетчики предзагрузки, безопасны для конкурентного обновления
type Stats struct {
	Fetched   atomic.Int64
	FromCache atomic.Int64
	Missing   atomic.Int64
	Failed    atomic.Int64
}

// Total - количество обработанных тайлов
func (s *Stats) Total() int64 {
	return s.Fetched.Load() + s.FromCache.Load() + s.Missing.Load() + s.Failed.Load()
}

// TileWorker забирает задания из общей очереди и прогревает URL кеш
type TileWorker struct {
	*worker.BaseWorker
	tiles   TileGetter
	jobs    <-chan Job
	refresh bool
	stats   *Stats
}

// NewTileWorker создает воркер предзагрузки. refresh заставляет перезапросить
// тайлы, уже лежащие в кеше
func NewTileWorker(id int, tiles TileGetter, jobs <-chan Job, refresh bool, stats *Stats, logger *zap.Logger) *TileWorker {
	return &TileWorker{
		BaseWorker: worker.NewBaseWorker(fmt.Sprintf("tile-prefetch-%d", id), logger),
		tiles:      tiles,
		jobs:       jobs,
		refresh:    refresh,
		stats:      stats,
	}
}

// Start обрабатывает задания, пока очередь не закрыта
func (w *TileWorker) Start(ctx context.Context) error {
	for {
		select {
		case <-w.StopChan():
			return nil

		case <-ctx.Done():
			return ctx.Err()

		case job, ok := <-w.jobs:
			if !ok {
				return nil
			}
			w.process(ctx, job)
		}
	}
}

func (w *TileWorker) process(ctx context.Context, job Job) {
	tile, err := w.tiles.GetTile(ctx, domain.TileRequest{
		MapType:      job.MapType,
		X:            job.X,
		Y:            job.Y,
		Zoom:         job.Zoom,
		ForceRefresh: w.refresh,
	})

	switch {
	case err != nil:
		w.stats.Failed.Add(1)
		w.Logger().Warn("Tile prefetch failed",
			zap.Int("z", job.Zoom),
			zap.Int("x", job.X),
			zap.Int("y", job.Y),
			zap.Error(err))
	case tile == nil:
		w.stats.Missing.Add(1)
	case tile.FromCache:
		w.stats.FromCache.Add(1)
	default:
		w.stats.Fetched.Add(1)
	}
}
