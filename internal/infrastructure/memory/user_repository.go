// Package memory holds the volatile fallback stores used when no database is
// configured or the configured one is unreachable. Records live only for the
// lifetime of the process. Unlike the original single-threaded runtime, this
// server handles requests on concurrent goroutines, so access is mutex-guarded.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.Mutex
	users []entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperr.ErrDuplicateEmail
		}
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string, includePassword bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			if !includePassword {
				out.Password = ""
			}
			return &out, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			out := u
			out.Password = ""
			return &out, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		u := r.users[i]
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
