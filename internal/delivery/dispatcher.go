package delivery

import (
	"context"
	"log/slog"
	"sync"

	"laborlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrQueueFull = errs.New("delivery queue is full")

// WorkerDispatcher manages a pool of goroutines that execute delivery tasks.
// Dispatch never blocks the producer: a full queue is reported as an error
// and the notification simply stays undelivered (status SENT).
type WorkerDispatcher struct {
	task       *Task
	queue      chan uuid.UUID
	maxWorkers int
	wg         sync.WaitGroup
	logger     *slog.Logger
}

func NewWorkerDispatcher(task *Task, maxWorkers, queueSize int, logger *slog.Logger) *WorkerDispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &WorkerDispatcher{
		task:       task,
		queue:      make(chan uuid.UUID, queueSize),
		maxWorkers: maxWorkers,
		logger:     logger,
	}
	d.startWorkers()
	return d
}

func (d *WorkerDispatcher) startWorkers() {
	for i := 0; i < d.maxWorkers; i++ {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

func (d *WorkerDispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Info("starting delivery worker", "id", workerID)

	for notificationID := range d.queue {
		// Workers use a background context: delivery outlives the request
		// that created the notification, and mid-retry cancellation is not
		// supported.
		d.task.Run(context.Background(), notificationID)
	}

	d.logger.Info("shutting down delivery worker", "id", workerID)
}

// Dispatch queues a notification for out-of-band delivery.
func (d *WorkerDispatcher) Dispatch(_ context.Context, notificationID uuid.UUID) error {
	select {
	case d.queue <- notificationID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (d *WorkerDispatcher) Stop() {
	d.logger.Info("stopping delivery dispatcher")
	close(d.queue)
	d.wg.Wait()
	d.logger.Info("all delivery workers have finished")
}
