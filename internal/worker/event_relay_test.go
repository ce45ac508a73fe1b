package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
	testhelpers "github.com/recerqa/recerqa-ai/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewEventRelayDefaults(t *testing.T) {
	relay := NewEventRelay(&testhelpers.EventFacadeStub{}, nil, time.Second, 0, 0, discardLogger())
	if relay.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", relay.batchSize)
	}
	if relay.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", relay.workers)
	}
}

func TestEventRelayPublishesAndMarks(t *testing.T) {
	facade := &testhelpers.EventFacadeStub{Batches: [][]model.OrderEvent{{
		{ID: 1, OrderID: 10, Type: model.OrderEventCreated},
		{ID: 2, OrderID: 11, Type: model.OrderEventCreated},
	}}}
	observer := &testhelpers.PublishObserverStub{}
	relay := NewEventRelay(facade, observer, 5*time.Millisecond, 2, 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relay.Start(ctx)

	waitFor(t, time.Second, func() bool {
		facade.Lock()
		defer facade.Unlock()
		return len(facade.Marked) == 2
	})
	relay.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(facade.Published))
	}
	if observer.Successes() != 2 || observer.Failures() != 0 {
		t.Fatalf("unexpected observer counts: %d/%d", observer.Successes(), observer.Failures())
	}
}

func TestEventRelayLeavesFailedEventUnmarked(t *testing.T) {
	attempts := int32(0)
	event := model.OrderEvent{ID: 7, OrderID: 3, Type: model.OrderEventCreated}
	facade := &testhelpers.EventFacadeStub{
		Batches: [][]model.OrderEvent{{event}, {event}},
		PublishFn: func(context.Context, model.OrderEvent) error {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return errors.New("broker down")
			}
			return nil
		},
	}
	observer := &testhelpers.PublishObserverStub{}
	relay := NewEventRelay(facade, observer, 5*time.Millisecond, 1, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relay.Start(ctx)

	waitFor(t, time.Second, func() bool {
		facade.Lock()
		defer facade.Unlock()
		return len(facade.Marked) > 0
	})
	relay.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Marked) != 1 || facade.Marked[0] != 7 {
		t.Fatalf("expected event 7 marked once, got %v", facade.Marked)
	}
	if observer.Failures() != 1 || observer.Successes() != 1 {
		t.Fatalf("unexpected observer counts: %d/%d", observer.Successes(), observer.Failures())
	}
}

func TestEventRelaySurvivesClaimErrors(t *testing.T) {
	calls := int32(0)
	facade := &testhelpers.EventFacadeStub{}
	facade.PendingFn = func(context.Context, int) ([]model.OrderEvent, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("db down")
		}
		return nil, nil
	}
	relay := NewEventRelay(facade, nil, 5*time.Millisecond, 1, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	relay.Start(ctx)

	waitFor(t, time.Second, func() bool { return atomic.LoadInt32(&calls) >= 2 })
	relay.Stop()
}

func TestEventRelayStartIsIdempotent(t *testing.T) {
	relay := NewEventRelay(&testhelpers.EventFacadeStub{}, nil, 5*time.Millisecond, 1, 1, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	relay.Start(ctx)
	jobs := relay.jobs
	relay.Start(ctx)
	if relay.jobs != jobs {
		t.Fatal("expected second start to be ignored")
	}
	relay.Stop()
	relay.Stop()
}
