package repository

import (
	"context"
	"time"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// EventRepository manages the order event outbox.
type EventRepository interface {
	ClaimBatch(ctx context.Context, limit int, lease time.Duration) ([]model.OrderEvent, error)
	MarkPublished(ctx context.Context, id int64) error
}
