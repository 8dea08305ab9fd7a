package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "photochef/internal/errors"
	"photochef/internal/model"
)

func TestPDFService_RenderBook(t *testing.T) {
	images := newTestImageService(t)

	// one recipe with a real stored image, one pointing at a missing file
	imageURL, err := images.Save("dish.png", "image/png", int64(len(pngPixel)), bytes.NewReader(pngPixel), 1)
	require.NoError(t, err)

	books := new(MockRecipeBookRepository)
	recipes := new(MockRecipeRepository)
	books.On("FindByID", mock.Anything, uint(10)).Return(&model.RecipeBook{
		ID: 10, UserID: 1, Title: "Family Recipes", Author: "Alice",
	}, nil)
	recipes.On("ListForBook", mock.Anything, uint(10), uint(1)).Return([]model.Recipe{
		{
			ID: 1, Name: "Pancakes", Instructions: "Mix and fry.", ImageURL: imageURL,
			Ingredients: []model.Ingredient{{Name: "Flour", Quantity: "2 cups"}},
			Allergens:   model.AllergenList{model.AllergenGluten, model.AllergenEggs},
		},
		{
			ID: 2, Name: "Soup", Instructions: "Simmer.", ImageURL: "/images/1/gone.png",
		},
	}, nil)

	cache := newStubCache()
	svc := NewPDFService(books, recipes, images, cache)
	data, filename, err := svc.RenderBook(context.Background(), 1, 10)

	require.NoError(t, err, "a missing recipe image must not fail the render")
	assert.NotEmpty(t, data)
	assert.Equal(t, "Family Recipes.pdf", filename)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, data, cache.entries["pdf:book:10"])
}

func TestPDFService_RenderBookNotOwner(t *testing.T) {
	books := new(MockRecipeBookRepository)
	recipes := new(MockRecipeRepository)
	books.On("FindByID", mock.Anything, uint(10)).Return(&model.RecipeBook{ID: 10, UserID: 9}, nil)

	svc := NewPDFService(books, recipes, newTestImageService(t), newStubCache())
	_, _, err := svc.RenderBook(context.Background(), 1, 10)

	assert.ErrorIs(t, err, apperrors.ErrNotBookOwner)
	recipes.AssertNotCalled(t, "ListForBook", mock.Anything, mock.Anything, mock.Anything)
}

func TestPDFService_RenderBookMissing(t *testing.T) {
	books := new(MockRecipeBookRepository)
	recipes := new(MockRecipeRepository)
	books.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewPDFService(books, recipes, newTestImageService(t), newStubCache())
	_, _, err := svc.RenderBook(context.Background(), 1, 10)

	assert.ErrorIs(t, err, apperrors.ErrNotBookOwner)
}

func TestPDFService_RenderBookEmpty(t *testing.T) {
	books := new(MockRecipeBookRepository)
	recipes := new(MockRecipeRepository)
	books.On("FindByID", mock.Anything, uint(10)).Return(&model.RecipeBook{ID: 10, UserID: 1, Title: "Empty"}, nil)
	recipes.On("ListForBook", mock.Anything, uint(10), uint(1)).Return([]model.Recipe{}, nil)

	svc := NewPDFService(books, recipes, newTestImageService(t), newStubCache())
	_, _, err := svc.RenderBook(context.Background(), 1, 10)

	assert.ErrorIs(t, err, apperrors.ErrNoRecipesInBook)
}

// pngPixel is a valid 1x1 PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53, 0xde, 0x00, 0x00, 0x00,
	0x0c, 0x49, 0x44, 0x41, 0x54, 0x08, 0xd7, 0x63, 0xf8, 0xcf, 0xc0, 0x00,
	0x00, 0x00, 0x03, 0x00, 0x01, 0x9a, 0x60, 0xe1, 0xd5, 0x00, 0x00, 0x00,
	0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
