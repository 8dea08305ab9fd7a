package main

import (
	"log"
	"net/http"

	_ "photochef/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"photochef/internal/auth"
	"photochef/internal/cache"
	"photochef/internal/config"
	"photochef/internal/db"
	"photochef/internal/handler"
	"photochef/internal/model"
	"photochef/internal/repository"
	"photochef/internal/router"
	"photochef/internal/service"
)

// @title PhotoChef API
// @version 1.0
// @description Recipe book management API with image uploads, PDF export and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RecipeBook{},
		&model.Recipe{},
		&model.Ingredient{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	bookRepo := repository.NewRecipeBookRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)

	// Initialize auth and storage components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	imageService, err := service.NewImageService(cfg.StorageRoot)
	if err != nil {
		log.Fatalf("image store init: %v", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	bookService := service.NewRecipeBookService(bookRepo, cacheClient)
	recipeService := service.NewRecipeService(recipeRepo, bookRepo, cacheClient)
	pdfService := service.NewPDFService(bookRepo, recipeRepo, imageService, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	imageHandler := handler.NewImageHandler(imageService, recipeService, bookService)
	bookHandler := handler.NewRecipeBookHandler(bookService, imageService)
	recipeHandler := handler.NewRecipeHandler(recipeService, imageService)
	pdfHandler := handler.NewPDFHandler(pdfService)

	// Register routes
	router.Register(
		e,
		cfg,
		userHandler,
		imageHandler,
		bookHandler,
		recipeHandler,
		pdfHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
