package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
)

type ProductRepository struct {
	mu         sync.Mutex
	products   map[string]entity.Product
	categories []entity.Category
}

// NewProductRepository returns a catalog pre-seeded with the demo storefront
// data, so memory mode still shows a browsable shop.
func NewProductRepository() *ProductRepository {
	r := &ProductRepository{products: make(map[string]entity.Product)}
	r.categories = SeedCategories()
	for _, p := range SeedProducts() {
		r.products[p.ID] = p
	}
	return r
}

func (r *ProductRepository) List(_ context.Context, categoryID string) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID == "" || categoryID == "all" || p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products[p.ID] = *p
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[p.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	r.products[p.ID] = *p
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) Categories(_ context.Context) ([]entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
