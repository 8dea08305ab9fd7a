package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"photochef/internal/errors"
	"photochef/internal/service"
)

// PDFHandler streams rendered recipe book PDFs.
type PDFHandler struct {
	pdfService service.PDFService
}

// NewPDFHandler creates a new PDF handler.
func NewPDFHandler(pdfService service.PDFService) *PDFHandler {
	return &PDFHandler{pdfService: pdfService}
}

// Render godoc
// @Summary Render one of the caller's recipe books as a PDF
// @Tags pdf
// @Produce application/pdf
// @Security BearerAuth
// @Param bookId path int true "Recipe book ID"
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pdf/{bookId} [get]
func (h *PDFHandler) Render(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	bookID, err := parseID(c, "bookId")
	if err != nil {
		return err
	}

	data, filename, err := h.pdfService.RenderBook(c.Request().Context(), userID, bookID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
