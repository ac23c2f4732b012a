package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/internal/domain/apperr"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
)

func TestOrderRepositoryCreateRejectsDuplicateCode(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepository()

	first := &entity.Order{ID: "JF-00042", UserID: "u1", Status: entity.StatusConfirmed}
	require.NoError(t, r.Create(ctx, first))

	second := &entity.Order{ID: "JF-00042", UserID: "u2", Status: entity.StatusConfirmed}
	err := r.Create(ctx, second)
	assert.ErrorIs(t, err, apperr.ErrDuplicateOrderCode)

	// The first order must be untouched by the rejected write.
	got, err := r.GetByID(ctx, "JF-00042")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
