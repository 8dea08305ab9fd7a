package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photochef/internal/errors"
	"photochef/internal/service"
)

// RecipeHandler handles recipe endpoints, all scoped to the caller.
type RecipeHandler struct {
	recipeService service.RecipeService
	imageService  *service.ImageService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService, imageService *service.ImageService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, imageService: imageService}
}

// RecipeRequest represents a multipart recipe submission. Ingredients is a
// JSON array of {"name","quantity"} objects, allergenIds a JSON array of
// integer allergen ids (1=Gluten ... 13=Lupin).
type RecipeRequest struct {
	Name         string `form:"name" validate:"required"`
	Description  string `form:"description"`
	Instructions string `form:"instructions"`
	RecipeBookID uint   `form:"recipeBookId" validate:"required"`
	Ingredients  string `form:"ingredients"`
	AllergenIDs  string `form:"allergenIds"`
}

func bindRecipeInput(c echo.Context) (service.RecipeInput, error) {
	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return service.RecipeInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid recipe data")
	}
	if err := c.Validate(&req); err != nil {
		return service.RecipeInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return service.RecipeInput{
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		RecipeBookID: req.RecipeBookID,
		Ingredients:  req.Ingredients,
		AllergenIDs:  req.AllergenIDs,
	}, nil
}

// saveImage stores the optional imageFile part, returning "" when absent.
func (h *RecipeHandler) saveImage(c echo.Context, userID uint) (string, error) {
	fh, err := c.FormFile("imageFile")
	if err != nil {
		return "", nil
	}
	return saveUpload(h.imageService, fh, userID)
}

// List godoc
// @Summary List the caller's recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Recipe
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recipes, err := h.recipeService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipes)
}

// Get godoc
// @Summary Get one of the caller's recipes by id
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.Recipe
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.recipeService.Get(c.Request().Context(), userID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipe)
}

// Create godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param instructions formData string false "Instructions"
// @Param recipeBookId formData int true "Owning recipe book ID"
// @Param ingredients formData string false "JSON array of {name, quantity} objects"
// @Param allergenIds formData string false "JSON array of allergen ids"
// @Param imageFile formData file false "Recipe image"
// @Success 201 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	in, err := bindRecipeInput(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	// Validate before the image is written, so a rejected submission
	// leaves no file behind.
	if err := h.recipeService.Validate(ctx, userID, in); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	url, err := h.saveImage(c, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	in.ImageURL = url

	recipe, err := h.recipeService.Create(ctx, userID, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, recipe)
}

// Update godoc
// @Summary Update one of the caller's recipes
// @Tags recipes
// @Accept multipart/form-data
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param instructions formData string false "Instructions"
// @Param recipeBookId formData int true "Owning recipe book ID"
// @Param ingredients formData string false "JSON array of {name, quantity} objects"
// @Param allergenIds formData string false "JSON array of allergen ids"
// @Param imageFile formData file false "Replacement recipe image"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	in, err := bindRecipeInput(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	// Validate and check the target exists before the image is written,
	// so a rejected submission leaves no file behind.
	if err := h.recipeService.Validate(ctx, userID, in); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if _, err := h.recipeService.Get(ctx, userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	url, err := h.saveImage(c, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	in.ImageURL = url

	if _, err := h.recipeService.Update(ctx, userID, id, in); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete one of the caller's recipes
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.recipeService.Delete(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
