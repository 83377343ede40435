package main

import (
	"log"
	"net/http"

	"safarihub/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"safarihub/internal/auth"
	"safarihub/internal/cache"
	"safarihub/internal/catalog"
	"safarihub/internal/config"
	"safarihub/internal/db"
	"safarihub/internal/handler"
	"safarihub/internal/media"
	"safarihub/internal/model"
	"safarihub/internal/repository"
	"safarihub/internal/router"
	"safarihub/internal/service"
)

// @title Safarihub Catalog API
// @version 1.0
// @description Tourism catalog API: public tours, car rentals, packages and gallery with token-gated admin mutations.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	cfg := config.Load()

	// Swagger UI points "Try it out" requests at the public host.
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Tour{},
		&model.CarRental{},
		&model.TourPackage{},
		&model.GalleryItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploads, err := media.NewStore(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("uploads init: %v", err)
	}

	// Identity layer
	adminRepo := repository.NewAdminRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	adminService := service.NewAdminService(adminRepo, jwtService, cfg.OpenRegistration)

	// One generic engine, four kinds
	tourRepo := repository.NewCatalogRepository[model.Tour](gormDB, catalog.Tours.NewestFirst)
	rentalRepo := repository.NewCatalogRepository[model.CarRental](gormDB, catalog.Rentals.NewestFirst)
	packageRepo := repository.NewCatalogRepository[model.TourPackage](gormDB, catalog.Packages.NewestFirst)
	galleryRepo := repository.NewCatalogRepository[model.GalleryItem](gormDB, catalog.Gallery.NewestFirst)

	tourService := service.NewCatalogService[model.Tour, *model.Tour](catalog.Tours, tourRepo, nil, cacheClient)
	rentalService := service.NewCatalogService[model.CarRental, *model.CarRental](catalog.Rentals, rentalRepo, uploads, cacheClient)
	packageService := service.NewCatalogService[model.TourPackage, *model.TourPackage](catalog.Packages, packageRepo, uploads, cacheClient)
	galleryService := service.NewCatalogService[model.GalleryItem, *model.GalleryItem](catalog.Gallery, galleryRepo, uploads, cacheClient)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(adminService),
		Tours:   handler.NewCatalogHandler[model.Tour, *model.Tour](tourService, catalog.Tours),
		Rentals: handler.NewCatalogHandler[model.CarRental, *model.CarRental](rentalService, catalog.Rentals),
		Packs:   handler.NewCatalogHandler[model.TourPackage, *model.TourPackage](packageService, catalog.Packages),
		Gallery: handler.NewCatalogHandler[model.GalleryItem, *model.GalleryItem](galleryService, catalog.Gallery),
	}

	router.Register(e, cfg, handlers, uploads.Dir())

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
