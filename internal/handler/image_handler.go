package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"photochef/internal/errors"
	"photochef/internal/service"
)

// ImageHandler handles image upload, listing, deletion and orphan cleanup.
type ImageHandler struct {
	imageService  *service.ImageService
	recipeService service.RecipeService
	bookService   service.RecipeBookService
}

// NewImageHandler creates a new image handler.
func NewImageHandler(imageService *service.ImageService, recipeService service.RecipeService, bookService service.RecipeBookService) *ImageHandler {
	return &ImageHandler{
		imageService:  imageService,
		recipeService: recipeService,
		bookService:   bookService,
	}
}

// UploadResponse represents a successful upload response.
type UploadResponse struct {
	URL string `json:"url"`
}

// CleanupResponse reports the result of an orphan cleanup run.
type CleanupResponse struct {
	DeletedCount int      `json:"deleted_count"`
	DeletedNames []string `json:"deleted_names"`
}

// saveUpload stores a multipart file through the image service.
func saveUpload(imageService *service.ImageService, fh *multipart.FileHeader, userID uint) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return imageService.Save(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, src, userID)
}

// Upload godoc
// @Summary Upload an image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file (.jpg, .jpeg or .png, max 5MB)"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /images/upload [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrNoFile)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	url, err := saveUpload(h.imageService, fh, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadResponse{URL: url})
}

// List godoc
// @Summary List the caller's stored images
// @Tags images
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /images [get]
func (h *ImageHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	urls, err := h.imageService.ListForUser(userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, urls)
}

// Delete godoc
// @Summary Delete one of the caller's images by file name
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param fileName path string true "Stored file name"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /images/{fileName} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileName := c.Param("fileName")
	if err := h.imageService.DeleteForUser(userID, fileName); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":   "image deleted successfully",
		"file_name": fileName,
	})
}

// Cleanup godoc
// @Summary Delete stored images no longer referenced by any recipe or book
// @Tags images
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CleanupResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /images/cleanup [delete]
func (h *ImageHandler) Cleanup(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	recipes, err := h.recipeService.List(ctx, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	books, err := h.bookService.List(ctx, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var referenced []string
	for _, r := range recipes {
		if r.ImageURL != "" {
			referenced = append(referenced, r.ImageURL)
		}
	}
	for _, b := range books {
		if b.CoverImageURL != "" {
			referenced = append(referenced, b.CoverImageURL)
		}
	}

	deleted, err := h.imageService.CleanupOrphans(userID, referenced)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CleanupResponse{
		DeletedCount: len(deleted),
		DeletedNames: deleted,
	})
}
