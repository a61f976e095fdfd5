package worker

import "context"

// Worker - единица пула WorkerManager. Реализации встраивают BaseWorker
// ради Name/Stop и канала остановки
type Worker interface {
	// Start обрабатывает задания до Stop, отмены ctx или конца очереди.
	// context.Canceled не считается ошибкой воркера
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
