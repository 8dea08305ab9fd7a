package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"photochef/internal/config"
	"photochef/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	imageHandler *handler.ImageHandler,
	bookHandler *handler.RecipeBookHandler,
	recipeHandler *handler.RecipeHandler,
	pdfHandler *handler.PDFHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Stored images are served directly from the filesystem store.
	e.Static("/images", filepath.Join(cfg.StorageRoot, "images"))

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Image routes
	secured.POST("/images/upload", imageHandler.Upload)
	secured.GET("/images", imageHandler.List)
	secured.DELETE("/images/cleanup", imageHandler.Cleanup)
	secured.DELETE("/images/:fileName", imageHandler.Delete)

	// Recipe book routes
	secured.GET("/recipebooks", bookHandler.List)
	secured.GET("/recipebooks/:id", bookHandler.Get)
	secured.POST("/recipebooks", bookHandler.Create)
	secured.DELETE("/recipebooks/:id", bookHandler.Delete)

	// Recipe routes
	secured.GET("/recipes", recipeHandler.List)
	secured.GET("/recipes/:id", recipeHandler.Get)
	secured.POST("/recipes", recipeHandler.Create)
	secured.PUT("/recipes/:id", recipeHandler.Update)
	secured.DELETE("/recipes/:id", recipeHandler.Delete)

	// PDF export
	secured.GET("/pdf/:bookId", pdfHandler.Render)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
