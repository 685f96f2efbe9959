package workers

import (
	"context"
	"sync"

	"github.com/alimgiray/menuhub/pkg/logger"
)

// WorkerManager starts, tracks and stops the background workers
type WorkerManager struct {
	workers []Worker
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(workers ...Worker) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// StartAll starts every registered worker in its own goroutine
func (wm *WorkerManager) StartAll() error {
	for _, worker := range wm.workers {
		wm.startWorker(worker)
	}

	logger.Infof("Started %d workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Error("Error stopping worker")
		}
	}

	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Error("Worker stopped with error")
		}
	}()
}

// GetWorkerStatus returns whether each worker is running
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool, len(wm.workers))
	for _, worker := range wm.workers {
		if w, ok := worker.(interface{ IsRunning() bool }); ok {
			status[worker.GetWorkerID()] = w.IsRunning()
		} else {
			status[worker.GetWorkerID()] = false
		}
	}
	return status
}
