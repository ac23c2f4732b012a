package repository

import (
	"context"

	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
)

// OrderRepository persists placed orders.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
}
