package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "photochef/internal/errors"
	"photochef/internal/model"
	"photochef/internal/repository"
)

// RecipeInput carries a submitted recipe payload. Ingredients and
// AllergenIDs arrive as JSON strings, matching the multipart form fields.
type RecipeInput struct {
	Name         string
	Description  string
	Instructions string
	RecipeBookID uint
	Ingredients  string // JSON array of {"name", "quantity"} objects
	AllergenIDs  string // JSON array of integers
	ImageURL     string
}

type ingredientPayload struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// RecipeService validates recipe payloads against the ownership and shape
// rules before delegating to the repository.
type RecipeService interface {
	Validate(ctx context.Context, userID uint, in RecipeInput) error
	Create(ctx context.Context, userID uint, in RecipeInput) (*model.Recipe, error)
	Update(ctx context.Context, userID, id uint, in RecipeInput) (*model.Recipe, error)
	Get(ctx context.Context, userID, id uint) (*model.Recipe, error)
	List(ctx context.Context, userID uint) ([]model.Recipe, error)
	Delete(ctx context.Context, userID, id uint) error
}

type recipeService struct {
	recipes repository.RecipeRepository
	books   repository.RecipeBookRepository
	cache   Cache
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipes repository.RecipeRepository, books repository.RecipeBookRepository, cache Cache) RecipeService {
	return &recipeService{recipes: recipes, books: books, cache: cache}
}

// validate runs the fail-fast check sequence: book ownership, then
// ingredient shape, then allergen ids. Nothing is persisted unless all
// three pass.
func (s *recipeService) validate(ctx context.Context, userID uint, in RecipeInput) ([]model.Ingredient, model.AllergenList, error) {
	book, err := s.books.FindByID(ctx, in.RecipeBookID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, apperrors.ErrBookNotFoundOrForbidden
		}
		return nil, nil, fmt.Errorf("find recipe book: %w", err)
	}
	if book.UserID != userID {
		return nil, nil, apperrors.ErrBookNotFoundOrForbidden
	}

	ingredients, err := parseIngredients(in.Ingredients)
	if err != nil {
		return nil, nil, err
	}

	allergens, err := parseAllergenIDs(in.AllergenIDs)
	if err != nil {
		return nil, nil, err
	}

	return ingredients, allergens, nil
}

func parseIngredients(raw string) ([]model.Ingredient, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var payload []ingredientPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, apperrors.ErrMalformedIngredients
	}

	ingredients := make([]model.Ingredient, 0, len(payload))
	for _, p := range payload {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Quantity) == "" {
			return nil, apperrors.ErrIncompleteIngredient
		}
		ingredients = append(ingredients, model.Ingredient{Name: p.Name, Quantity: p.Quantity})
	}
	return ingredients, nil
}

func parseAllergenIDs(raw string) (model.AllergenList, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, apperrors.ErrMalformedAllergens
	}

	var unknown []int
	allergens := make(model.AllergenList, 0, len(ids))
	for _, id := range ids {
		a := model.Allergen(id)
		if !a.Valid() {
			unknown = append(unknown, id)
			continue
		}
		allergens = append(allergens, a)
	}
	if len(unknown) > 0 {
		return nil, &apperrors.UnknownAllergenIDsError{IDs: unknown}
	}
	return allergens, nil
}

// Validate runs the submission checks without persisting anything, so
// callers can reject a payload before any side effect.
func (s *recipeService) Validate(ctx context.Context, userID uint, in RecipeInput) error {
	_, _, err := s.validate(ctx, userID, in)
	return err
}

func (s *recipeService) Create(ctx context.Context, userID uint, in RecipeInput) (*model.Recipe, error) {
	ingredients, allergens, err := s.validate(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Name:         in.Name,
		Description:  in.Description,
		Instructions: in.Instructions,
		ImageURL:     in.ImageURL,
		RecipeBookID: in.RecipeBookID,
		UserID:       userID,
		Ingredients:  ingredients,
		Allergens:    allergens,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	_ = s.cache.Delete(ctx, pdfCacheKey(in.RecipeBookID))
	return recipe, nil
}

func (s *recipeService) Update(ctx context.Context, userID, id uint, in RecipeInput) (*model.Recipe, error) {
	ingredients, allergens, err := s.validate(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipes.FindByID(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}

	oldBookID := recipe.RecipeBookID

	recipe.Name = in.Name
	recipe.Description = in.Description
	recipe.Instructions = in.Instructions
	recipe.RecipeBookID = in.RecipeBookID
	recipe.Ingredients = ingredients
	recipe.Allergens = allergens
	if in.ImageURL != "" {
		recipe.ImageURL = in.ImageURL
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	// Moving a recipe changes the rendered output of both books.
	_ = s.cache.Delete(ctx, pdfCacheKey(recipe.RecipeBookID))
	if oldBookID != recipe.RecipeBookID {
		_ = s.cache.Delete(ctx, pdfCacheKey(oldBookID))
	}
	return recipe, nil
}

func (s *recipeService) Get(ctx context.Context, userID, id uint) (*model.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) List(ctx context.Context, userID uint) ([]model.Recipe, error) {
	return s.recipes.ListForUser(ctx, userID)
}

func (s *recipeService) Delete(ctx context.Context, userID, id uint) error {
	recipe, err := s.recipes.FindByID(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// scoped delete is a no-op for foreign or missing recipes
			return nil
		}
		return fmt.Errorf("find recipe: %w", err)
	}
	if err := s.recipes.DeleteByID(ctx, id, userID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	_ = s.cache.Delete(ctx, pdfCacheKey(recipe.RecipeBookID))
	return nil
}
