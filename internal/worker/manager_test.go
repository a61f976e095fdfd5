package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started *atomic.Int32
	result  error
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Add(1)
	select {
	case <-w.StopChan():
		return w.result
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newBlockingWorker(name string, started *atomic.Int32, result error) *blockingWorker {
	return &blockingWorker{
		BaseWorker: NewBaseWorker(name, zap.NewNop()),
		started:    started,
		result:     result,
	}
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_Stop(t *testing.T) {
	var started atomic.Int32
	m := NewWorkerManager(zap.NewNop())
	a := newBlockingWorker("a", &started, nil)
	b := newBlockingWorker("b", &started, errors.New("failed"))
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())

	assert.Equal(t, int32(2), started.Load())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())

	// повторный Stop ничего не делает
	require.NoError(t, a.Stop())
}

func TestWorkerManager_WaitOnCancel(t *testing.T) {
	var started atomic.Int32
	m := NewWorkerManager(zap.NewNop())
	m.Register(newBlockingWorker("a", &started, nil))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, m.Start(ctx))
	cancel()
	m.Wait()

	assert.Equal(t, int32(1), started.Load())
}
