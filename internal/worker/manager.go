package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout - максимальное время ожидания завершения воркеров в Stop
const shutdownTimeout = 30 * time.Second

// WorkerManager запускает пул воркеров и ждет их завершения
type WorkerManager struct {
	workers []Worker
	logger  *zap.Logger
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{logger: logger}
}

// Register добавляет воркер, вызывать до Start
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Debug("Worker registered", zap.String("name", w.Name()))
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Worker(nil), m.workers...)
}

// Start запускает каждый воркер в своей горутине и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Debug("Starting workers", zap.Int("count", len(workers)))

	m.wg.Add(len(workers))
	for _, w := range workers {
		go m.run(ctx, w)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()

	err := w.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
		return
	}
	m.logger.Debug("Worker finished", zap.String("name", w.Name()))
}

// Wait ждет завершения всех запущенных воркеров
func (m *WorkerManager) Wait() {
	m.wg.Wait()
}

// Stop сигнализирует всем воркерам и ждет их не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()
	m.logger.Debug("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out", zap.Duration("timeout", shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", shutdownTimeout)
	}
}
