package repository

import (
	"context"

	"gorm.io/gorm"

	"photochef/internal/model"
)

// RecipeBookRepository defines recipe book persistence operations.
// Ownership is not enforced here; callers check UserID before exposing
// or mutating a book.
type RecipeBookRepository interface {
	Create(ctx context.Context, book *model.RecipeBook) error
	FindByID(ctx context.Context, id uint) (*model.RecipeBook, error)
	DeleteByID(ctx context.Context, id uint) error
	ListForUser(ctx context.Context, userID uint) ([]model.RecipeBook, error)
}

type recipeBookRepository struct {
	db *gorm.DB
}

// NewRecipeBookRepository builds a GORM-backed repository.
func NewRecipeBookRepository(db *gorm.DB) RecipeBookRepository {
	return &recipeBookRepository{db: db}
}

func (r *recipeBookRepository) Create(ctx context.Context, book *model.RecipeBook) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *recipeBookRepository) FindByID(ctx context.Context, id uint) (*model.RecipeBook, error) {
	var book model.RecipeBook
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteByID removes a book; its recipes cascade at the database level.
func (r *recipeBookRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.RecipeBook{}, id).Error
}

func (r *recipeBookRepository) ListForUser(ctx context.Context, userID uint) ([]model.RecipeBook, error) {
	var books []model.RecipeBook
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
