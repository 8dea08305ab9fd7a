package repository

import (
	"context"

	"gorm.io/gorm"

	"photochef/internal/model"
)

// RecipeRepository defines recipe persistence operations. Reads and deletes
// are scoped by owning user id: a recipe belonging to another user behaves
// exactly like one that does not exist.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id, userID uint) (*model.Recipe, error)
	ListForUser(ctx context.Context, userID uint) ([]model.Recipe, error)
	ListForBook(ctx context.Context, bookID, userID uint) ([]model.Recipe, error)
	Update(ctx context.Context, recipe *model.Recipe) error
	DeleteByID(ctx context.Context, id, userID uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository builds a GORM-backed repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) FindByID(ctx context.Context, id, userID uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListForUser(ctx context.Context, userID uint) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Preload("Ingredients").
		Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ListForBook(ctx context.Context, bookID, userID uint) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Preload("Ingredients").
		Where("recipe_book_id = ? AND user_id = ?", bookID, userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update replaces the recipe's mutable fields. The ingredient list is
// replaced wholesale: old rows are dropped and the submitted ones inserted,
// all inside one transaction.
func (r *recipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.Ingredient{}).Error; err != nil {
			return err
		}
		for i := range recipe.Ingredients {
			recipe.Ingredients[i].ID = 0
			recipe.Ingredients[i].RecipeID = recipe.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(recipe).Error
	})
}

// DeleteByID is a no-op when the id exists but belongs to another user.
// Ingredients cascade at the database level.
func (r *recipeRepository) DeleteByID(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).Delete(&model.Recipe{}).Error
}
