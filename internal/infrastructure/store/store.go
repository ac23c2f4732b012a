// Package store implements the dual-mode storage layer. When a database is
// configured each operation runs against postgres first; any operation that
// fails with a connection-class error (see IsConnectionError) transparently
// falls back to the in-process volatile tables for that call, so the app
// keeps working in a degraded demo mode. Without a configured database the
// volatile tables are the only storage.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
	"github.com/jannofresh/jannofresh-api/internal/infrastructure/memory"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

// Storage modes reported by the health endpoint.
const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)

// UserStore is the dual-mode user table. Password hashing happens exactly
// once, here in Create; repositories below this layer never see plaintext.
type UserStore struct {
	primary  repository.UserRepository // nil in memory mode
	fallback *memory.UserRepository
	logger   *logrus.Logger
}

func NewUserStore(primary repository.UserRepository, logger *logrus.Logger) *UserStore {
	return &UserStore{primary: primary, fallback: memory.NewUserRepository(), logger: logger}
}

func (s *UserStore) Create(ctx context.Context, u *entity.User) error {
	hash, err := helpers.HashPassword(u.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = hash
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if s.primary != nil {
		err := s.primary.Create(ctx, u)
		if !s.divert(err, "create user") {
			return err
		}
	}
	return s.fallback.Create(ctx, u)
}

func (s *UserStore) FindByEmail(ctx context.Context, email string, includePassword bool) (*entity.User, error) {
	if s.primary != nil {
		u, err := s.primary.FindByEmail(ctx, email, includePassword)
		if !s.divert(err, "find user by email") {
			return u, err
		}
	}
	return s.fallback.FindByEmail(ctx, email, includePassword)
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if s.primary != nil {
		u, err := s.primary.FindByID(ctx, id)
		if !s.divert(err, "find user by id") {
			return u, err
		}
	}
	return s.fallback.FindByID(ctx, id)
}

func (s *UserStore) List(ctx context.Context) ([]entity.User, error) {
	if s.primary != nil {
		users, err := s.primary.List(ctx)
		if !s.divert(err, "list users") {
			return users, err
		}
	}
	return s.fallback.List(ctx)
}

func (s *UserStore) divert(err error, op string) bool {
	return divert(s.logger, err, op)
}

var _ repository.UserRepository = (*UserStore)(nil)

// ProductStore is the dual-mode catalog. The fallback carries the seeded demo
// catalog so memory mode still has a browsable shop.
type ProductStore struct {
	primary  repository.ProductRepository
	fallback *memory.ProductRepository
	logger   *logrus.Logger
}

func NewProductStore(primary repository.ProductRepository, logger *logrus.Logger) *ProductStore {
	return &ProductStore{primary: primary, fallback: memory.NewProductRepository(), logger: logger}
}

func (s *ProductStore) List(ctx context.Context, categoryID string) ([]entity.Product, error) {
	if s.primary != nil {
		out, err := s.primary.List(ctx, categoryID)
		if !divert(s.logger, err, "list products") {
			return out, err
		}
	}
	return s.fallback.List(ctx, categoryID)
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if s.primary != nil {
		p, err := s.primary.GetByID(ctx, id)
		if !divert(s.logger, err, "get product") {
			return p, err
		}
	}
	return s.fallback.GetByID(ctx, id)
}

func (s *ProductStore) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if s.primary != nil {
		err := s.primary.Create(ctx, p)
		if !divert(s.logger, err, "create product") {
			return err
		}
	}
	return s.fallback.Create(ctx, p)
}

func (s *ProductStore) Update(ctx context.Context, p *entity.Product) error {
	if s.primary != nil {
		err := s.primary.Update(ctx, p)
		if !divert(s.logger, err, "update product") {
			return err
		}
	}
	return s.fallback.Update(ctx, p)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if s.primary != nil {
		err := s.primary.Delete(ctx, id)
		if !divert(s.logger, err, "delete product") {
			return err
		}
	}
	return s.fallback.Delete(ctx, id)
}

func (s *ProductStore) Categories(ctx context.Context) ([]entity.Category, error) {
	if s.primary != nil {
		out, err := s.primary.Categories(ctx)
		if !divert(s.logger, err, "list categories") {
			return out, err
		}
	}
	return s.fallback.Categories(ctx)
}

var _ repository.ProductRepository = (*ProductStore)(nil)

// OrderStore is the dual-mode order table.
type OrderStore struct {
	primary  repository.OrderRepository
	fallback *memory.OrderRepository
	logger   *logrus.Logger
}

func NewOrderStore(primary repository.OrderRepository, logger *logrus.Logger) *OrderStore {
	return &OrderStore{primary: primary, fallback: memory.NewOrderRepository(), logger: logger}
}

func (s *OrderStore) Create(ctx context.Context, o *entity.Order) error {
	if s.primary != nil {
		err := s.primary.Create(ctx, o)
		if !divert(s.logger, err, "create order") {
			return err
		}
	}
	return s.fallback.Create(ctx, o)
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if s.primary != nil {
		o, err := s.primary.GetByID(ctx, id)
		if !divert(s.logger, err, "get order") {
			return o, err
		}
	}
	return s.fallback.GetByID(ctx, id)
}

func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	if s.primary != nil {
		out, err := s.primary.ListByUser(ctx, userID)
		if !divert(s.logger, err, "list orders by user") {
			return out, err
		}
	}
	return s.fallback.ListByUser(ctx, userID)
}

func (s *OrderStore) ListAll(ctx context.Context) ([]entity.Order, error) {
	if s.primary != nil {
		out, err := s.primary.ListAll(ctx)
		if !divert(s.logger, err, "list orders") {
			return out, err
		}
	}
	return s.fallback.ListAll(ctx)
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	if s.primary != nil {
		o, err := s.primary.UpdateStatus(ctx, id, status)
		if !divert(s.logger, err, "update order status") {
			return o, err
		}
	}
	return s.fallback.UpdateStatus(ctx, id, status)
}

var _ repository.OrderRepository = (*OrderStore)(nil)

// divert decides whether a primary-store error routes the call to the
// fallback, logging the degradation when it does.
func divert(logger *logrus.Logger, err error, op string) bool {
	if !IsConnectionError(err) {
		return false
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{"op": op, "error": err.Error()}).
			Warn("database unreachable, falling back to in-memory store")
	}
	return true
}
