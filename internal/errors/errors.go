package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUsernameTaken is returned when registering an already used username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoFile is returned when an upload contains no file.
	ErrNoFile = errors.New("no file uploaded")
	// ErrInvalidFileType is returned when extension or content type is not allowed.
	ErrInvalidFileType = errors.New("invalid file type, only .jpg, .jpeg and .png are allowed")
	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file size exceeds the 5MB limit")
	// ErrImageNotFound is returned when a stored image cannot be resolved.
	ErrImageNotFound = errors.New("image not found")
	// ErrBookNotFound is returned when a recipe book is missing or not owned by the caller.
	ErrBookNotFound = errors.New("recipe book not found")
	// ErrBookNotFoundOrForbidden is returned when a recipe targets a book the caller does not own.
	ErrBookNotFoundOrForbidden = errors.New("the specified recipe book does not exist or does not belong to the user")
	// ErrRecipeNotFound is returned when a recipe is missing or not owned by the caller.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrMalformedIngredients is returned when the ingredients payload is not a JSON array of objects.
	ErrMalformedIngredients = errors.New("invalid ingredients format, ingredients should be a JSON array")
	// ErrIncompleteIngredient is returned when an ingredient has a blank name or quantity.
	ErrIncompleteIngredient = errors.New("each ingredient must have a valid name and quantity")
	// ErrMalformedAllergens is returned when the allergens payload is not a JSON array of integers.
	ErrMalformedAllergens = errors.New("invalid allergens format, allergens should be a JSON array of integers")
	// ErrNotBookOwner is returned when rendering a book the caller has no access to.
	ErrNotBookOwner = errors.New("you do not have access to this recipe book")
	// ErrNoRecipesInBook is returned when rendering an empty recipe book.
	ErrNoRecipesInBook = errors.New("no recipes found in this recipe book")
)

// UnknownAllergenIDsError names every allergen id outside the defined range.
type UnknownAllergenIDsError struct {
	IDs []int
}

func (e *UnknownAllergenIDsError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "invalid allergen ids: " + strings.Join(parts, ", ")
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var unknownIDs *UnknownAllergenIDsError
	if errors.As(err, &unknownIDs) {
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_ALLERGEN_IDS")
	}

	switch {
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNoFile):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILE")
	case errors.Is(err, ErrInvalidFileType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILE_TYPE")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrImageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "IMAGE_NOT_FOUND")
	case errors.Is(err, ErrBookNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOK_NOT_FOUND")
	case errors.Is(err, ErrBookNotFoundOrForbidden):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BOOK_NOT_FOUND_OR_FORBIDDEN")
	case errors.Is(err, ErrRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case errors.Is(err, ErrMalformedIngredients):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MALFORMED_INGREDIENTS")
	case errors.Is(err, ErrIncompleteIngredient):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INCOMPLETE_INGREDIENT")
	case errors.Is(err, ErrMalformedAllergens):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MALFORMED_ALLERGENS")
	case errors.Is(err, ErrNotBookOwner):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_BOOK_OWNER")
	case errors.Is(err, ErrNoRecipesInBook):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_RECIPES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
