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
	cfg := config.Load(":8081")
	log := logger.New("users", cfg.Env)

	db, err := database.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	repo := repositories.NewUserRepository(db)
	service := services.NewCrudService[models.User, *models.User](repo)
	handler := handlers.NewUserHandler(service, log)

	app := server.NewApp("users")
	handler.RegisterRoutes(app.Group("/api/v1"))

	server.Run(app, cfg.Port, log)
}
