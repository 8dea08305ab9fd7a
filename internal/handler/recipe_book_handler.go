package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"photochef/internal/errors"
	"photochef/internal/model"
	"photochef/internal/service"
)

// RecipeBookHandler handles recipe book endpoints.
type RecipeBookHandler struct {
	bookService  service.RecipeBookService
	imageService *service.ImageService
}

// NewRecipeBookHandler creates a new recipe book handler.
func NewRecipeBookHandler(bookService service.RecipeBookService, imageService *service.ImageService) *RecipeBookHandler {
	return &RecipeBookHandler{bookService: bookService, imageService: imageService}
}

// RecipeBookRequest represents a multipart recipe book submission.
type RecipeBookRequest struct {
	Title  string `form:"title" validate:"required"`
	Author string `form:"author" validate:"required"`
}

// List godoc
// @Summary List the caller's recipe books
// @Tags recipebooks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RecipeBook
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipebooks [get]
func (h *RecipeBookHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	books, err := h.bookService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, books)
}

// Get godoc
// @Summary Get one of the caller's recipe books by id
// @Tags recipebooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe book ID"
// @Success 200 {object} model.RecipeBook
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipebooks/{id} [get]
func (h *RecipeBookHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	book, err := h.bookService.Get(c.Request().Context(), userID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, book)
}

// Create godoc
// @Summary Create a recipe book with an optional cover image
// @Tags recipebooks
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param author formData string true "Author"
// @Param imageFile formData file false "Cover image"
// @Success 201 {object} model.RecipeBook
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipebooks [post]
func (h *RecipeBookHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RecipeBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipe book data")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var coverURL string
	if fh, err := c.FormFile("imageFile"); err == nil {
		coverURL, err = saveUpload(h.imageService, fh, userID)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
	}

	book := &model.RecipeBook{
		Title:         req.Title,
		Author:        req.Author,
		CoverImageURL: coverURL,
		UserID:        userID,
	}
	if err := h.bookService.Create(c.Request().Context(), book); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, book)
}

// Delete godoc
// @Summary Delete one of the caller's recipe books
// @Tags recipebooks
// @Security BearerAuth
// @Param id path int true "Recipe book ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipebooks/{id} [delete]
func (h *RecipeBookHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookService.Delete(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
