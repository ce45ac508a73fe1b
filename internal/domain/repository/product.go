package repository

import (
	"context"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// ProductRepository provides read access to the catalog.
type ProductRepository interface {
	GetByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}
