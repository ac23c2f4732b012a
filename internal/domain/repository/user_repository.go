package repository

import (
	"context"

	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
)

// UserRepository defines user-record persistence. Implementations must
// normalize duplicate-key failures to apperr.ErrDuplicateEmail and report
// missing records as apperr.ErrUserNotFound. Create receives the password
// field already hashed; implementations store it verbatim.
type UserRepository interface {
	// FindByEmail looks a user up by (lowercased) email. The password hash
	// is populated only when includePassword is true.
	FindByEmail(ctx context.Context, email string, includePassword bool) (*entity.User, error)
	// FindByID never populates the password hash.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
}
