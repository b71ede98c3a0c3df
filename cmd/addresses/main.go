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
	cfg := config.Load(":8084")
	log := logger.New("addresses", cfg.Env)

	db, err := database.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.Address{}); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	repo := repositories.NewAddressRepository(db)
	service := services.NewCrudService[models.Address, *models.Address](repo)
	handler := handlers.NewAddressHandler(service, log)

	app := server.NewApp("addresses")
	handler.RegisterRoutes(app.Group("/api/v1"))

	server.Run(app, cfg.Port, log)
}
