package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photochef/internal/model"
)

func TestRecipeBookRepository(t *testing.T) {
	repo := NewRecipeBookRepository(newTestDB(t))
	ctx := context.Background()

	book := &model.RecipeBook{Title: "Family Recipes", Author: "Alice", UserID: 1}
	require.NoError(t, repo.Create(ctx, book))
	require.NotZero(t, book.ID)

	other := &model.RecipeBook{Title: "Bob's Book", Author: "Bob", UserID: 2}
	require.NoError(t, repo.Create(ctx, other))

	found, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Family Recipes", found.Title)

	// listing filters on owner equality, nothing cleverer
	mine, err := repo.ListForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, book.ID, mine[0].ID)

	require.NoError(t, repo.DeleteByID(ctx, book.ID))
	_, err = repo.FindByID(ctx, book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
