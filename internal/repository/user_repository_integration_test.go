//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

func TestUserRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewUserRepository(db.Database)

	jane := &model.User{
		Email:    "jane@example.com",
		Username: "jane",
		Password: "$2a$10$hashedpassword",
		Name:     "Jane Doe",
		Roles:    []string{model.RoleUser},
		Active:   true,
	}

	t.Run("create sets ID and timestamps", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, jane))
		assert.False(t, jane.ID.IsZero())
		assert.False(t, jane.CreatedAt.IsZero())
	})

	t.Run("duplicate email is rejected by the unique index", func(t *testing.T) {
		err := repo.Create(ctx, &model.User{
			Email:    "jane@example.com",
			Username: "jane2",
			Active:   true,
		})
		require.Error(t, err)
		assert.True(t, IsDuplicateKey(err))
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, jane.ID, found.ID)
		assert.Equal(t, []string{model.RoleUser}, found.Roles)
	})

	t.Run("find by email for auth keeps the password hash", func(t *testing.T) {
		found, err := repo.FindByEmailForAuth(ctx, "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.NotEmpty(t, found.Password)
		assert.True(t, found.Active)
	})

	t.Run("find by ID minimal excludes the password hash", func(t *testing.T) {
		found, err := repo.FindByIDMinimal(ctx, jane.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Empty(t, found.Password)
		assert.Equal(t, "Jane Doe", found.Name)
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "jane")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, jane.ID, found.ID)
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("update replaces the document", func(t *testing.T) {
		jane.Roles = []string{model.RoleUser, model.RoleAdmin}
		require.NoError(t, repo.Update(ctx, jane))

		found, err := repo.FindByID(ctx, jane.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Contains(t, found.Roles, model.RoleAdmin)
	})

	t.Run("delete deactivates instead of removing", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, jane.ID))

		found, err := repo.FindByID(ctx, jane.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.Active)
	})

	t.Run("list with pagination", func(t *testing.T) {
		for _, u := range []*model.User{
			{Email: "a@example.com", Username: "a", Active: true},
			{Email: "b@example.com", Username: "b", Active: true},
		} {
			require.NoError(t, repo.Create(ctx, u))
		}

		users, err := repo.List(ctx, bson.M{"active": true}, 1, 0)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		users, err = repo.List(ctx, bson.M{"active": true}, 10, 0)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}
