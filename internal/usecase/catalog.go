package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/domain/repository"
)

// ProductCache keeps recently resolved catalog entries. Implementations
// swallow their own failures so a broken cache never blocks a lookup.
type ProductCache interface {
	Get(ctx context.Context, name string) (*model.Product, bool)
	Set(ctx context.Context, product model.Product)
}

// CatalogUseCase resolves product names against the catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
	cache    ProductCache
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, cache ProductCache) *CatalogUseCase {
	return &CatalogUseCase{products: products, cache: cache}
}

// Lookup finds the single product whose name equals name exactly. A cached
// entry is returned without consulting the store, so a name that becomes
// ambiguous later still resolves until the entry expires.
func (u *CatalogUseCase) Lookup(ctx context.Context, name string) (*model.Product, error) {
	if u.cache != nil {
		if product, ok := u.cache.Get(ctx, name); ok {
			return product, nil
		}
	}

	product, err := u.products.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("lookup product: %w", err)
	}

	if u.cache != nil {
		u.cache.Set(ctx, *product)
	}
	return product, nil
}

// List returns the whole catalog ordered by name.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}
