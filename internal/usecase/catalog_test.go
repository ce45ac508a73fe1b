package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/test"
)

func TestCatalogUseCaseLookup(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{{ID: 1, Name: "りんご", UnitPrice: 120}}}
	cache := &test.ProductCacheStub{}
	uc := NewCatalogUseCase(repo, cache)

	product, err := uc.Lookup(context.Background(), "りんご")
	if err != nil || product.ID != 1 {
		t.Fatalf("unexpected result: %+v err=%v", product, err)
	}
	if cache.Sets != 1 {
		t.Fatalf("expected product to be cached, sets=%d", cache.Sets)
	}

	if _, err := uc.Lookup(context.Background(), "りんご"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Lookups != 1 || cache.Hits != 1 {
		t.Fatalf("expected cached lookup, repo=%d hits=%d", repo.Lookups, cache.Hits)
	}
}

func TestCatalogUseCaseLookupServesCachedEntry(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{{ID: 1, Name: "ねじ", UnitPrice: 10}}}
	cache := &test.ProductCacheStub{}
	uc := NewCatalogUseCase(repo, cache)

	if _, err := uc.Lookup(context.Background(), "ねじ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.Products = append(repo.Products, model.Product{ID: 2, Name: "ねじ", UnitPrice: 12})

	product, err := uc.Lookup(context.Background(), "ねじ")
	if err != nil || product.ID != 1 {
		t.Fatalf("expected cached product until expiry, got %+v err=%v", product, err)
	}
	if repo.Lookups != 1 {
		t.Fatalf("cached lookup must not reach the store, lookups=%d", repo.Lookups)
	}

	uc = NewCatalogUseCase(repo, &test.ProductCacheStub{})
	if _, err := uc.Lookup(context.Background(), "ねじ"); !errors.Is(err, domainErrors.ErrAmbiguousProduct) {
		t.Fatalf("expected ambiguity once the entry is gone, got %v", err)
	}
}

func TestCatalogUseCaseLookupIsExact(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{{ID: 1, Name: "Apple"}}}
	uc := NewCatalogUseCase(repo, nil)

	if _, err := uc.Lookup(context.Background(), "apple"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for different case, got %v", err)
	}
	if _, err := uc.Lookup(context.Background(), "Apple "); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for trailing space, got %v", err)
	}
}

func TestCatalogUseCaseLookupErrors(t *testing.T) {
	t.Run("not found is not cached", func(t *testing.T) {
		cache := &test.ProductCacheStub{}
		uc := NewCatalogUseCase(&test.ProductRepositoryStub{}, cache)
		if _, err := uc.Lookup(context.Background(), "x"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
		if cache.Sets != 0 {
			t.Fatalf("misses must not be cached")
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		repo := &test.ProductRepositoryStub{Products: []model.Product{{ID: 1, Name: "ねじ"}, {ID: 2, Name: "ねじ"}}}
		uc := NewCatalogUseCase(repo, nil)
		_, err := uc.Lookup(context.Background(), "ねじ")
		if !errors.Is(err, domainErrors.ErrAmbiguousProduct) || errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ambiguous product error, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		uc := NewCatalogUseCase(&test.ProductRepositoryStub{Err: storeErr}, nil)
		_, err := uc.Lookup(context.Background(), "x")
		if !errors.Is(err, storeErr) || errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}

func TestCatalogUseCaseList(t *testing.T) {
	repo := &test.ProductRepositoryStub{Products: []model.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}}
	uc := NewCatalogUseCase(repo, nil)

	products, err := uc.List(context.Background())
	if err != nil || len(products) != 2 {
		t.Fatalf("unexpected result: %v err=%v", products, err)
	}
}
