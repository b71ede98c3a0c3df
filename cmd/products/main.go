package main

import (
	"microshop/internal/config"
	"microshop/internal/database"
	"microshop/internal/handlers"
	"microshop/internal/models"
	"microshop/internal/repositories"
	"microshop/internal/server"
	"microshop/internal/services"
	"microshop/pkg/logger"
)

func main() {
	cfg := config.Load(":8082")
	log := logger.New("products", cfg.Env)

	db, err := database.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	categoryService := services.NewCrudService[models.Category, *models.Category](categoryRepo)
	productService := services.NewCrudService[models.Product, *models.Product](productRepo)

	app := server.NewApp("products")
	apiV1 := app.Group("/api/v1")
	handlers.NewCategoryHandler(categoryService, log).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService, log).RegisterRoutes(apiV1)

	server.Run(app, cfg.Port, log)
}
