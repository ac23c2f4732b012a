package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
)

func newUser(id, name, email string) *entity.User {
	return &entity.User{ID: id, Name: name, Email: email, Password: "$2a$12$hash"}
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	require.NoError(t, r.Create(ctx, newUser("u1", "Anna", "anna@example.com")))

	err := r.Create(ctx, newUser("u2", "Other Anna", "ANNA@example.com"))
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("u1", "Anna", "anna@example.com")))

	u, err := r.FindByEmail(ctx, "Anna@Example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Empty(t, u.Password, "password must be stripped unless requested")

	u, err = r.FindByEmail(ctx, "anna@example.com", true)
	require.NoError(t, err)
	assert.Equal(t, "$2a$12$hash", u.Password)

	_, err = r.FindByEmail(ctx, "nobody@example.com", false)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestUserRepositoryFindByIDStripsPassword(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("u1", "Anna", "anna@example.com")))

	u, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, u.Password)

	_, err = r.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestUserRepositoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("u1", "First", "first@example.com")))
	require.NoError(t, r.Create(ctx, newUser("u2", "Second", "second@example.com")))

	users, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "u1", users[1].ID)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("u1", "Anna", "anna@example.com")))

	u, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	u.Name = "Mutated"

	again, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", again.Name)
}
