package store

import (
	"context"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

// failingUserRepo is a primary store whose every operation fails with err.
type failingUserRepo struct {
	err   error
	calls int
}

func (r *failingUserRepo) Create(context.Context, *entity.User) error {
	r.calls++
	return r.err
}

func (r *failingUserRepo) FindByEmail(context.Context, string, bool) (*entity.User, error) {
	r.calls++
	return nil, r.err
}

func (r *failingUserRepo) FindByID(context.Context, string) (*entity.User, error) {
	r.calls++
	return nil, r.err
}

func (r *failingUserRepo) List(context.Context) ([]entity.User, error) {
	r.calls++
	return nil, r.err
}

func TestUserStoreCreateHashesPasswordOnce(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(nil, nil) // memory mode

	u := &entity.User{Name: "Anna", Email: "anna@example.com", Password: "plaintext1"}
	require.NoError(t, s.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	stored, err := s.FindByEmail(ctx, "anna@example.com", true)
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext1", stored.Password)
	// A double-hashed password would not verify against the plaintext.
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "plaintext1"))
}

func TestUserStoreMemoryModeDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(nil, nil)

	require.NoError(t, s.Create(ctx, &entity.User{Name: "Anna", Email: "anna@example.com", Password: "plaintext1"}))

	err := s.Create(ctx, &entity.User{Name: "Anna Again", Email: "Anna@Example.com", Password: "plaintext2"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestUserStoreFallsBackOnConnectionError(t *testing.T) {
	ctx := context.Background()
	primary := &failingUserRepo{err: syscall.ECONNREFUSED}
	s := NewUserStore(primary, nil)

	u := &entity.User{Name: "Anna", Email: "anna@example.com", Password: "plaintext1"}
	require.NoError(t, s.Create(ctx, u))
	assert.Equal(t, 1, primary.calls, "primary must be tried first")

	// Reads divert too, landing on the record the fallback kept.
	got, err := s.FindByEmail(ctx, "anna@example.com", false)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
}

func TestUserStoreDoesNotDivertOnDataErrors(t *testing.T) {
	ctx := context.Background()
	primary := &failingUserRepo{err: apperr.ErrDuplicateEmail}
	s := NewUserStore(primary, nil)

	err := s.Create(ctx, &entity.User{Name: "Anna", Email: "anna@example.com", Password: "plaintext1"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	// The fallback must not have absorbed the record.
	_, err = s.fallback.FindByEmail(ctx, "anna@example.com", false)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestProductStoreMemoryModeServesSeededCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewProductStore(nil, nil)

	products, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	greens, err := s.List(ctx, "leafy-greens")
	require.NoError(t, err)
	for _, p := range greens {
		assert.Equal(t, "leafy-greens", p.CategoryID)
	}
}

func TestOrderStoreMemoryModeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore(nil, nil)

	o := &entity.Order{ID: "JF-00001", UserID: "u1", Status: entity.StatusConfirmed, Total: 10}
	require.NoError(t, s.Create(ctx, o))

	got, err := s.GetByID(ctx, "JF-00001")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	updated, err := s.UpdateStatus(ctx, "JF-00001", entity.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, updated.Status)

	mine, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = s.GetByID(ctx, "JF-99999")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
