package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// EventFacade exposes the subset of application functionality required by the relay.
type EventFacade interface {
	PendingEvents(ctx context.Context, limit int) ([]model.OrderEvent, error)
	PublishEvent(ctx context.Context, event model.OrderEvent) error
	MarkEventPublished(ctx context.Context, id int64) error
}

// PublishObserver is notified about every publish attempt.
type PublishObserver interface {
	EventPublished(err error)
}

// EventRelay polls the order outbox and hands claimed events to the broker
// concurrently. An event that fails to publish stays unpublished and is
// claimed again once its lease expires.
type EventRelay struct {
	facade       EventFacade
	observer     PublishObserver
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.OrderEvent
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEventRelay constructs relay worker pool.
func NewEventRelay(facade EventFacade, observer PublishObserver, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *EventRelay {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &EventRelay{
		facade:       facade,
		observer:     observer,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
	}
}

// Start launches background processing.
func (r *EventRelay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.jobs = make(chan model.OrderEvent, r.batchSize*r.workers)

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *EventRelay) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *EventRelay) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *EventRelay) fetchAndDispatch(ctx context.Context) {
	events, err := r.facade.PendingEvents(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("claim order events failed", slog.String("error", err.Error()))
		return
	}
	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- event:
		}
	}
}

func (r *EventRelay) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-r.jobs:
			if !ok {
				return
			}
			r.handleEvent(ctx, event)
		}
	}
}

func (r *EventRelay) handleEvent(ctx context.Context, event model.OrderEvent) {
	err := r.facade.PublishEvent(ctx, event)
	if r.observer != nil {
		r.observer.EventPublished(err)
	}
	if err != nil {
		r.logger.Warn("publish order event failed",
			slog.Int64("event_id", event.ID),
			slog.Int64("order_id", event.OrderID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := r.facade.MarkEventPublished(ctx, event.ID); err != nil {
		r.logger.Error("mark order event published failed",
			slog.Int64("event_id", event.ID),
			slog.String("error", err.Error()),
		)
	}
}
