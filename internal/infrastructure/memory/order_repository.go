package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
)

type OrderRepository struct {
	mu     sync.Mutex
	orders []entity.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return apperr.ErrDuplicateOrderCode
		}
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	r.orders = append(r.orders, *o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			out := o
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *OrderRepository) ListByUser(_ context.Context, userID string) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *OrderRepository) ListAll(_ context.Context) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id, status string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			out := r.orders[i]
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
