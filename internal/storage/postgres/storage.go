package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type eventRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Events() repository.EventRepository {
	return &eventRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            unit_price NUMERIC(12,2) NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            customer_id TEXT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_lines (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            unit_price NUMERIC(12,2) NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS order_events (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL,
            event_type TEXT NOT NULL,
            payload JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            claimed_at TIMESTAMPTZ,
            published_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_events_pending ON order_events(id) WHERE published_at IS NULL`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ProductRepository implementation ---

// GetByName fetches at most two rows so that a duplicated name is reported
// instead of silently picking one of them.
func (r *productRepository) GetByName(ctx context.Context, name string) (*model.Product, error) {
	const query = `SELECT id, name, unit_price::float8 FROM products WHERE name=$1 ORDER BY id LIMIT 2`
	rows, err := r.storage.pool.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice); err != nil {
			return nil, err
		}
		found = append(found, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, domainErrors.ErrNotFound
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrAmbiguousProduct, name)
	}
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, unit_price::float8 FROM products ORDER BY name, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

type orderCreatedPayload struct {
	OrderID    int64              `json:"orderId"`
	CustomerID string             `json:"customerId"`
	Status     model.OrderStatus  `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	Lines      []orderLinePayload `json:"lines"`
}

type orderLinePayload struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (customer_id, status) VALUES ($1, $2) RETURNING id, created_at`
	const insertLine = `INSERT INTO order_lines (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4) RETURNING id`
	const insertEvent = `INSERT INTO order_events (order_id, event_type, payload) VALUES ($1, $2, $3)`

	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	created := order
	created.Lines = make([]model.OrderLine, len(order.Lines))
	copy(created.Lines, order.Lines)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrder, order.CustomerID, order.Status).Scan(&created.ID, &created.CreatedAt); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range created.Lines {
			line := &created.Lines[i]
			line.OrderID = created.ID
			if err := tx.QueryRow(ctx, insertLine, created.ID, line.ProductID, line.Quantity, line.UnitPrice).Scan(&line.ID); err != nil {
				return fmt.Errorf("insert order line: %w", err)
			}
		}

		payload, err := json.Marshal(newOrderCreatedPayload(created))
		if err != nil {
			return fmt.Errorf("encode order event: %w", err)
		}
		if _, err := tx.Exec(ctx, insertEvent, created.ID, model.OrderEventCreated, string(payload)); err != nil {
			return fmt.Errorf("insert order event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.storage.logger.Debug("order stored",
		slog.Int64("order_id", created.ID),
		slog.String("customer_id", created.CustomerID),
		slog.Int("lines", len(created.Lines)),
	)
	return &created, nil
}

func newOrderCreatedPayload(o model.Order) orderCreatedPayload {
	lines := make([]orderLinePayload, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLinePayload{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return orderCreatedPayload{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		Lines:      lines,
	}
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	const query = `SELECT o.id, o.customer_id, o.status, o.created_at,
                          l.id, l.product_id, COALESCE(p.name, ''), l.quantity, l.unit_price::float8
                   FROM orders o
                   JOIN order_lines l ON l.order_id = o.id
                   LEFT JOIN products p ON p.id = l.product_id
                   WHERE o.customer_id=$1
                   ORDER BY o.created_at DESC, o.id DESC, l.id`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o model.Order
			l model.OrderLine
		)
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt,
			&l.ID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		l.OrderID = o.ID

		if n := len(result); n > 0 && result[n-1].ID == o.ID {
			result[n-1].Lines = append(result[n-1].Lines, l)
			continue
		}
		o.Lines = []model.OrderLine{l}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Summary(ctx context.Context, customerID string) (*model.OrderSummary, error) {
	const query = `SELECT COUNT(DISTINCT o.id),
                          COUNT(DISTINCT o.id) FILTER (WHERE o.status = $2),
                          COALESCE(SUM(l.quantity), 0),
                          COALESCE(SUM(l.quantity * l.unit_price), 0)::float8
                   FROM orders o
                   LEFT JOIN order_lines l ON l.order_id = o.id
                   WHERE o.customer_id=$1`
	var summary model.OrderSummary
	err := r.storage.pool.QueryRow(ctx, query, customerID, model.OrderStatusPending).Scan(
		&summary.TotalOrders, &summary.PendingOrders, &summary.TotalQuantity, &summary.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.OrderSummary{}, nil
		}
		return nil, err
	}
	return &summary, nil
}

// --- EventRepository implementation ---

// ClaimBatch locks unpublished events, stamps them as claimed and returns them.
// Events claimed earlier than lease ago are considered abandoned and claimed again.
func (r *eventRepository) ClaimBatch(ctx context.Context, limit int, lease time.Duration) ([]model.OrderEvent, error) {
	const selectQuery = `SELECT id, order_id, event_type, payload, created_at
                         FROM order_events
                         WHERE published_at IS NULL AND (claimed_at IS NULL OR claimed_at < $2)
                         ORDER BY id
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`
	const claimQuery = `UPDATE order_events SET claimed_at=NOW() WHERE id = ANY($1)`

	var events []model.OrderEvent
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit, time.Now().Add(-lease))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e model.OrderEvent
			if err := rows.Scan(&e.ID, &e.OrderID, &e.Type, &e.Payload, &e.CreatedAt); err != nil {
				return err
			}
			events = append(events, e)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		rows.Close()

		if len(events) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(events))
		for _, e := range events {
			ids = append(ids, e.ID)
		}
		if _, err := tx.Exec(ctx, claimQuery, ids); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) MarkPublished(ctx context.Context, id int64) error {
	const query = `UPDATE order_events SET published_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
