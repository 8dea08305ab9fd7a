package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "photochef/internal/errors"
	"photochef/internal/model"
	"photochef/internal/repository"
)

// RecipeBookService handles recipe book operations, enforcing ownership
// on reads and deletes so a foreign book is indistinguishable from a
// missing one.
type RecipeBookService interface {
	Create(ctx context.Context, book *model.RecipeBook) error
	Get(ctx context.Context, userID, id uint) (*model.RecipeBook, error)
	List(ctx context.Context, userID uint) ([]model.RecipeBook, error)
	Delete(ctx context.Context, userID, id uint) error
}

type recipeBookService struct {
	books repository.RecipeBookRepository
	cache Cache
}

// NewRecipeBookService creates a new recipe book service.
func NewRecipeBookService(books repository.RecipeBookRepository, cache Cache) RecipeBookService {
	return &recipeBookService{books: books, cache: cache}
}

func (s *recipeBookService) Create(ctx context.Context, book *model.RecipeBook) error {
	if err := s.books.Create(ctx, book); err != nil {
		return fmt.Errorf("create recipe book: %w", err)
	}
	return nil
}

func (s *recipeBookService) Get(ctx context.Context, userID, id uint) (*model.RecipeBook, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("find recipe book: %w", err)
	}
	if book.UserID != userID {
		return nil, apperrors.ErrBookNotFound
	}
	return book, nil
}

func (s *recipeBookService) List(ctx context.Context, userID uint) ([]model.RecipeBook, error) {
	return s.books.ListForUser(ctx, userID)
}

func (s *recipeBookService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.books.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete recipe book: %w", err)
	}
	_ = s.cache.Delete(ctx, pdfCacheKey(id))
	return nil
}
