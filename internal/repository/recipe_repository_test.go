package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"photochef/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.RecipeBook{},
		&model.Recipe{},
		&model.Ingredient{},
	))
	return db
}

func seedRecipe(t *testing.T, repo RecipeRepository, userID, bookID uint, name string) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		Name:         name,
		Instructions: "Cook it.",
		RecipeBookID: bookID,
		UserID:       userID,
		Ingredients:  []model.Ingredient{{Name: "Salt", Quantity: "1 tsp"}},
		Allergens:    model.AllergenList{model.AllergenGluten, model.AllergenDairy},
	}
	require.NoError(t, repo.Create(context.Background(), recipe))
	return recipe
}

func TestRecipeRepository_FindByIDScoped(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := seedRecipe(t, repo, 1, 10, "Pancakes")

	found, err := repo.FindByID(ctx, recipe.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", found.Name)
	require.Len(t, found.Ingredients, 1)
	assert.Equal(t, "Salt", found.Ingredients[0].Name)

	// a recipe owned by a different user is never returned
	_, err = repo.FindByID(ctx, recipe.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecipeRepository_AllergenRoundTrip(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := seedRecipe(t, repo, 1, 10, "Pancakes")

	found, err := repo.FindByID(ctx, recipe.ID, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		model.AllergenList{model.AllergenGluten, model.AllergenDairy},
		found.Allergens)
}

func TestRecipeRepository_ListForUser(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	seedRecipe(t, repo, 1, 10, "Pancakes")
	seedRecipe(t, repo, 1, 10, "Soup")
	seedRecipe(t, repo, 2, 20, "Curry")

	mine, err := repo.ListForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.ListForUser(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
	assert.Equal(t, "Curry", theirs[0].Name)
}

func TestRecipeRepository_ListForBook(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	seedRecipe(t, repo, 1, 10, "Pancakes")
	seedRecipe(t, repo, 1, 11, "Soup")

	recipes, err := repo.ListForBook(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pancakes", recipes[0].Name)

	// scoped by user as well
	recipes, err = repo.ListForBook(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeRepository_UpdateReplacesIngredients(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := seedRecipe(t, repo, 1, 10, "Pancakes")

	recipe.Name = "Crepes"
	recipe.Ingredients = []model.Ingredient{
		{Name: "Flour", Quantity: "2 cups"},
		{Name: "Milk", Quantity: "300ml"},
	}
	recipe.Allergens = model.AllergenList{model.AllergenEggs}
	require.NoError(t, repo.Update(ctx, recipe))

	found, err := repo.FindByID(ctx, recipe.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Crepes", found.Name)
	require.Len(t, found.Ingredients, 2)
	assert.ElementsMatch(t, model.AllergenList{model.AllergenEggs}, found.Allergens)

	// old ingredient rows are gone, not orphaned
	var count int64
	require.NoError(t, repo.(*recipeRepository).db.Model(&model.Ingredient{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRecipeRepository_DeleteByIDScoped(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	recipe := seedRecipe(t, repo, 1, 10, "Pancakes")

	// deleting as another user is a no-op
	require.NoError(t, repo.DeleteByID(ctx, recipe.ID, 2))
	_, err := repo.FindByID(ctx, recipe.ID, 1)
	assert.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, recipe.ID, 1))
	_, err = repo.FindByID(ctx, recipe.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
