package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	apperrors "photochef/internal/errors"
	"photochef/internal/model"
	"photochef/internal/repository"
)

const pdfCacheTTL = 5 * time.Minute

// Layout constants in millimeters on A4.
const (
	pageMargin   = 20.0
	contentWidth = 170.0
	columnWidth  = 80.0
)

func pdfCacheKey(bookID uint) string {
	return fmt.Sprintf("pdf:book:%d", bookID)
}

// PDFService renders a recipe book into a paginated PDF: a cover page, a
// table of contents and one page per recipe. Rendered output is cached
// best-effort in Redis and invalidated on recipe or book mutations.
type PDFService interface {
	RenderBook(ctx context.Context, userID, bookID uint) (data []byte, filename string, err error)
}

type pdfService struct {
	books   repository.RecipeBookRepository
	recipes repository.RecipeRepository
	images  *ImageService
	cache   Cache
}

// NewPDFService creates a new PDF service.
func NewPDFService(books repository.RecipeBookRepository, recipes repository.RecipeRepository, images *ImageService, cache Cache) PDFService {
	return &pdfService{books: books, recipes: recipes, images: images, cache: cache}
}

func (s *pdfService) RenderBook(ctx context.Context, userID, bookID uint) ([]byte, string, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", apperrors.ErrNotBookOwner
		}
		return nil, "", fmt.Errorf("find recipe book: %w", err)
	}
	if book.UserID != userID {
		return nil, "", apperrors.ErrNotBookOwner
	}

	recipes, err := s.recipes.ListForBook(ctx, bookID, userID)
	if err != nil {
		return nil, "", fmt.Errorf("list recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, "", apperrors.ErrNoRecipesInBook
	}

	filename := book.Title + ".pdf"

	if data, _ := s.cache.Get(ctx, pdfCacheKey(bookID)); data != nil {
		return data, filename, nil
	}

	data, err := s.render(book, recipes, userID)
	if err != nil {
		return nil, "", err
	}

	_ = s.cache.Set(ctx, pdfCacheKey(bookID), data, pdfCacheTTL)
	return data, filename, nil
}

func (s *pdfService) render(book *model.RecipeBook, recipes []model.Recipe, userID uint) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	s.renderCover(pdf, tr, book, userID)
	s.renderTableOfContents(pdf, tr, recipes)
	for _, recipe := range recipes {
		s.renderRecipe(pdf, tr, &recipe, userID)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *pdfService) renderCover(pdf *gofpdf.Fpdf, tr func(string) string, book *model.RecipeBook, userID uint) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 40)
	pdf.MultiCell(0, 18, tr(book.Title), "", "C", false)
	pdf.Ln(20)

	// Missing cover files are skipped, not an error.
	if path := s.images.ResolvePath(userID, book.CoverImageURL); path != "" {
		pdf.ImageOptions(path, pageMargin, 0, contentWidth, 0, true, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
	pdf.Ln(40)

	pdf.SetFont("Helvetica", "", 20)
	pdf.CellFormat(0, 10, tr(book.Author), "", 1, "C", false, 0, "")
}

// renderTableOfContents lists each recipe with its page number. The number
// is an approximation: one page per recipe offset by cover and TOC, never
// recomputed from actual content overflow.
func (s *pdfService) renderTableOfContents(pdf *gofpdf.Fpdf, tr func(string) string, recipes []model.Recipe) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 30)
	pdf.CellFormat(0, 12, "Table of Contents", "", 1, "C", false, 0, "")
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "", 16)
	for i, recipe := range recipes {
		pdf.CellFormat(contentWidth-20, 9, tr(recipe.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 9, fmt.Sprintf("%d", i+3), "", 1, "R", false, 0, "")
	}
}

func (s *pdfService) renderRecipe(pdf *gofpdf.Fpdf, tr func(string) string, recipe *model.Recipe, userID uint) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.MultiCell(0, 10, tr(recipe.Name), "", "C", false)
	pdf.Ln(15)

	rowTop := pdf.GetY()

	// Left column: the recipe image, silently skipped when missing.
	if path := s.images.ResolvePath(userID, recipe.ImageURL); path != "" {
		pdf.ImageOptions(path, pageMargin, rowTop, columnWidth, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	// Right column: ingredients and allergens.
	panelLeft := pageMargin + columnWidth + 10
	pdf.SetXY(panelLeft, rowTop)
	if len(recipe.Ingredients) > 0 {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(columnWidth, 8, "Ingredients:", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 14)
		for _, ing := range recipe.Ingredients {
			pdf.SetX(panelLeft)
			pdf.CellFormat(columnWidth, 7, tr(ing.Name+": "+ing.Quantity), "", 1, "C", false, 0, "")
		}
	}
	if len(recipe.Allergens) > 0 {
		pdf.Ln(8)
		pdf.SetX(panelLeft)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(columnWidth, 8, "Allergens:", "", 1, "C", false, 0, "")
		pdf.SetX(panelLeft)
		pdf.SetFont("Helvetica", "", 14)
		names := make([]string, len(recipe.Allergens))
		for i, a := range recipe.Allergens {
			names[i] = a.String()
		}
		pdf.MultiCell(columnWidth, 7, tr(strings.Join(names, ", ")), "", "C", false)
	}

	// Full-width instructions below the image/panel row. The row height is
	// a fixed estimate, matching the approximate layout of the rest of the
	// document.
	instructionsTop := pdf.GetY() + 10
	if min := rowTop + 90; instructionsTop < min {
		instructionsTop = min
	}
	pdf.SetY(instructionsTop)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "Instructions:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(0, 7, tr(recipe.Instructions), "", "L", false)
}
