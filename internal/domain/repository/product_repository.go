package repository

import (
	"context"

	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
)

// ProductRepository persists the storefront catalog.
type ProductRepository interface {
	List(ctx context.Context, categoryID string) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]entity.Category, error)
}
