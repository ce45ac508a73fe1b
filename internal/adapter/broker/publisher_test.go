package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx/fxtest"

	"github.com/recerqa/recerqa-ai/internal/config"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestKafkaPublisherPublish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}
	createdAt := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	event := model.OrderEvent{ID: 7, OrderID: 42, Type: model.OrderEventCreated, Payload: []byte(`{"orderId":42}`), CreatedAt: createdAt}
	if err := publisher.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(writer.msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(writer.msgs))
	}
	msg := writer.msgs[0]
	if string(msg.Key) != "42" || string(msg.Value) != `{"orderId":42}` || !msg.Time.Equal(createdAt) {
		t.Fatalf("unexpected message: %+v", msg)
	}
	headers := make(map[string]string)
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers["event-type"] != model.OrderEventCreated || headers["event-id"] != "7" || headers["content-type"] != "application/json" {
		t.Fatalf("unexpected headers: %v", headers)
	}

	if err := publisher.Close(); err != nil || !writer.closed {
		t.Fatalf("expected writer to be closed, err=%v", err)
	}
}

func TestKafkaPublisherPublishError(t *testing.T) {
	writeErr := errors.New("leader not available")
	publisher := &KafkaPublisher{writer: &fakeWriter{err: writeErr}, logger: testLogger()}

	if err := publisher.Publish(context.Background(), model.OrderEvent{ID: 1}); !errors.Is(err, writeErr) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestNewKafkaPublisherValidates(t *testing.T) {
	if _, err := NewKafkaPublisher(" , ", "topic", testLogger()); err == nil {
		t.Fatal("expected error for empty brokers")
	}
	if _, err := NewKafkaPublisher("localhost:9092", "", testLogger()); err == nil {
		t.Fatal("expected error for empty topic")
	}
	publisher, err := NewKafkaPublisher("k1:9092, k2:9092", "orders", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	writer, ok := publisher.writer.(*kafka.Writer)
	if !ok || writer.Topic != "orders" || writer.Addr == nil {
		t.Fatalf("unexpected writer: %+v", publisher.writer)
	}
}

func TestSplitBrokers(t *testing.T) {
	got := splitBrokers("a:1, ,b:2,")
	if len(got) != 2 || got[0] != "a:1" || got[1] != "b:2" {
		t.Fatalf("unexpected brokers: %v", got)
	}
}

func TestNewPublisherFromConfig(t *testing.T) {
	publisher, err := newPublisher(publisherParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := publisher.(NopPublisher); !ok {
		t.Fatalf("expected nop publisher, got %T", publisher)
	}
	if err := publisher.Publish(context.Background(), model.OrderEvent{}); err != nil {
		t.Fatalf("nop publish failed: %v", err)
	}

	publisher, err = newPublisher(publisherParams{Config: &config.Config{KafkaBrokers: "localhost:9092", KafkaTopic: "t"}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := publisher.(*KafkaPublisher); !ok {
		t.Fatalf("expected kafka publisher, got %T", publisher)
	}

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, publisher)
	lc.RequireStart()
	lc.RequireStop()
}
