package workers

import (
	"context"
	"time"

	"github.com/alimgiray/menuhub/internal/events"
	"github.com/alimgiray/menuhub/internal/metrics"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/sirupsen/logrus"
)

// StatusSnapshotWorker periodically re-evaluates every scheduled merchant and
// stores its open/closed snapshot, publishing an event when it flips
type StatusSnapshotWorker struct {
	*BaseWorker
	merchantRepo  *repositories.MerchantRepository
	statusService *services.StoreStatusService
	publisher     events.Publisher
	lock          SweepLock
	interval      time.Duration
	now           func() time.Time
}

// NewStatusSnapshotWorker creates a snapshot worker. A nil lock means this
// instance sweeps on every tick; a nil publisher drops events.
func NewStatusSnapshotWorker(
	workerID string,
	merchantRepo *repositories.MerchantRepository,
	statusService *services.StoreStatusService,
	publisher events.Publisher,
	lock SweepLock,
	interval time.Duration,
) *StatusSnapshotWorker {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if lock == nil {
		lock = localSweepLock{}
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatusSnapshotWorker{
		BaseWorker:    NewBaseWorker(workerID),
		merchantRepo:  merchantRepo,
		statusService: statusService,
		publisher:     publisher,
		lock:          lock,
		interval:      interval,
		now:           time.Now,
	}
}

// Start sweeps once immediately and then on every tick
func (w *StatusSnapshotWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)

	log := logger.WithField("worker_id", w.WorkerID)
	log.Info("Status snapshot worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Sweep(ctx); err != nil {
			log.WithError(err).Error("Status snapshot sweep failed")
		}

		select {
		case <-ctx.Done():
			log.Info("Status snapshot worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			log.Info("Status snapshot worker stopping")
			return nil
		case <-ticker.C:
		}
	}
}

// Sweep evaluates every active merchant that is not under manual override and
// returns how many snapshots changed. It does nothing when another instance
// holds the sweep lock.
func (w *StatusSnapshotWorker) Sweep(ctx context.Context) (int, error) {
	acquired, err := w.lock.Acquire(ctx, w.WorkerID, w.interval*9/10)
	if err != nil {
		return 0, err
	}
	if !acquired {
		logger.WithField("worker_id", w.WorkerID).Debug("Sweep lock held elsewhere, skipping")
		return 0, nil
	}

	start := time.Now()
	defer func() { metrics.ObserveSweepDuration(time.Since(start)) }()

	merchants, err := w.merchantRepo.ListScheduled()
	if err != nil {
		return 0, err
	}

	now := w.now()
	changed := 0
	for _, merchant := range merchants {
		if ctx.Err() != nil {
			break
		}

		log := logger.WithFields(logrus.Fields{
			"worker_id":   w.WorkerID,
			"merchant_id": merchant.ID,
		})

		status, err := w.statusService.Evaluate(merchant, now)
		if err != nil {
			log.WithError(err).Warn("Failed to evaluate merchant")
			continue
		}

		flipped, err := w.merchantRepo.UpdateOpenSnapshot(merchant.ID, status.IsOpen)
		if err != nil {
			log.WithError(err).Warn("Failed to store open snapshot")
			continue
		}
		if !flipped {
			continue
		}
		changed++

		event := events.StatusChanged{
			MerchantID:   merchant.ID,
			MerchantCode: merchant.Code,
			IsOpen:       status.IsOpen,
			Reason:       status.Reason,
			At:           now.UTC(),
		}
		if err := w.publisher.PublishStatus(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish status change")
		}
		log.WithField("is_open", status.IsOpen).Info("Store status changed")
	}

	metrics.AddSnapshotChanges(changed)
	return changed, nil
}
