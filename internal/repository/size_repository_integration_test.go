//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

func TestSizeRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSizeRepository(db)

	small := &model.PizzaSize{Name: "small", Centimeters: 25}
	medium := &model.PizzaSize{Name: "medium", Centimeters: 30, PriceIncPct: 15}

	t.Run("create size", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, small))
		assert.False(t, small.ID.IsZero())

		require.NoError(t, repo.Create(ctx, medium))
	})

	t.Run("duplicate name is rejected by the unique index", func(t *testing.T) {
		err := repo.Create(ctx, &model.PizzaSize{Name: "small", Centimeters: 40})
		require.Error(t, err)
		assert.True(t, IsDuplicateKey(err))
	})

	t.Run("duplicate centimeters is rejected by the unique index", func(t *testing.T) {
		err := repo.Create(ctx, &model.PizzaSize{Name: "grande", Centimeters: 30})
		require.Error(t, err)
		assert.True(t, IsDuplicateKey(err))
	})

	t.Run("find by ID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, medium.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "medium", found.Name)
		assert.Equal(t, 30, found.Centimeters)
		assert.Equal(t, 15.0, found.PriceIncPct)
	})

	t.Run("find by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "small")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, small.ID, found.ID)
		assert.Zero(t, found.PriceIncPct)
	})

	t.Run("find by name when missing", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "family")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find all", func(t *testing.T) {
		sizes, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, sizes, 2)
	})

	t.Run("partial update", func(t *testing.T) {
		err := repo.Update(ctx, medium.ID, map[string]interface{}{"price_inc_pct": 20.0})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, medium.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 20.0, found.PriceIncPct)
		assert.Equal(t, 30, found.Centimeters)
	})

	t.Run("delete size", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, small.ID))

		found, err := repo.FindByID(ctx, small.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete missing size does not error", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, primitive.NewObjectID()))
	})
}
